package catalog

import "github.com/mmcdole/airdate/internal/domain"

// Built-in artwork references shipped with the seed set.
const (
	artHero   = "assets/hero_background.png"
	artAction = "assets/cover_action_shonen.png"
	artScifi  = "assets/cover_scifi_cyberpunk.png"
	artSlice  = "assets/cover_slice_of_life.png"
)

// SeedReleases returns the starter catalog used when no snapshot exists.
func SeedReleases() []domain.Release {
	return []domain.Release{
		{
			ID:          "1",
			Title:       "Cyber Chronicles: Neon Dawn",
			ReleaseDate: "2026-03-15",
			Studio:      "Future Works",
			Genre:       []string{"Sci-Fi", "Cyberpunk", "Action"},
			Description: "In a world where humanity has merged with machines, one detective seeks the truth behind the phantom code.",
			CoverImage:  artScifi,
			Gallery:     []string{artHero, artScifi},
		},
		{
			ID:          "2",
			Title:       "Sakura High: Eternal Spring",
			ReleaseDate: "2026-04-02",
			Studio:      "Kyoto Hearts",
			Genre:       []string{"Slice of Life", "Romance", "School"},
			Description: "A heartwarming story of friendship and first love beneath the falling cherry blossoms.",
			CoverImage:  artSlice,
			Gallery:     []string{artHero, artSlice},
		},
		{
			ID:          "3",
			Title:       "Blade of the Void",
			ReleaseDate: "2026-03-20",
			Studio:      "Mappa Arts",
			Genre:       []string{"Action", "Fantasy", "Shonen"},
			Description: "The void is expanding. Only the wielder of the Starlight Blade can seal the rift before it consumes the world.",
			CoverImage:  artAction,
			Gallery:     []string{artHero, artAction},
		},
		{
			ID:          "4",
			Title:       "Project: Override",
			ReleaseDate: "2026-05-10",
			Studio:      "Future Works",
			Genre:       []string{"Sci-Fi", "Mecha"},
			Description: "Giant robots clash in an interstellar war that will decide the fate of the galaxy.",
			CoverImage:  artScifi,
			Gallery:     []string{artHero, artScifi},
		},
		{
			ID:          "5",
			Title:       "Spirit Hunter",
			ReleaseDate: "2026-04-18",
			Studio:      "Spectral Animation",
			Genre:       []string{"Supernatural", "Mystery"},
			Description: "Hunting spirits is a dangerous job, but someone has to keep the balance between worlds.",
			CoverImage:  artAction,
			Gallery:     []string{artHero, artAction},
		},
	}
}
