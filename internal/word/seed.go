package word

import "github.com/rs/zerolog/log"

var defaultWords = []string{
	"APPLE", "BEACH", "BRAIN", "BREAD", "BRICK",
	"CHAIR", "CHESS", "CLOUD", "CRANE", "DANCE",
	"EARTH", "FLAME", "FRUIT", "GHOST", "GRAPE",
	"HEART", "HOUSE", "LIGHT", "MANGO", "MONEY",
	"MUSIC", "NIGHT", "OCEAN", "PIANO", "PLANT",
	"QUEEN", "RIVER", "ROBOT", "SMILE", "SNAKE",
	"SPACE", "STONE", "STORM", "SUGAR", "TABLE",
	"TIGER", "TRAIN", "WATER", "WHALE", "WORLD",
}

// Seed fills an empty word pool with the default list. Existing pools are
// left untouched so admin-added words survive restarts.
func Seed(store Store) error {
	count, err := store.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, text := range defaultWords {
		if _, err := store.Add(text); err != nil {
			return err
		}
	}
	log.Info().Int("words", len(defaultWords)).Msg("seeded word pool")
	return nil
}
