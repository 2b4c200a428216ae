package word

// Word is a 5-letter uppercase puzzle word. Immutable once created.
type Word struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"uniqueIndex;not null;size:5" json:"text"`
}

func (Word) TableName() string {
	return "words"
}
