// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package catalog

import "github.com/tomtom215/abiflix/internal/models"

const sampleVideoBase = "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/"

// Countries lists the countries offered by the browse filters and the admin
// form.
var Countries = []string{"USA", "India", "Turkey", "Korea", "China", "Japan", "UK"}

// Genres lists the genre tags offered by the browse filters and the admin
// form. Titles may carry tags outside this list.
var Genres = []string{"Action", "Drama", "Thriller", "Romance", "Comedy", "Horror", "Anime", "Sci-Fi", "Documentary"}

// DefaultTitles returns a fresh copy of the seed catalog. AddedAt is left
// zero; the store stamps it when seeding.
func DefaultTitles() []models.Title {
	return []models.Title{
		{
			ID:          "1",
			Title:       "Cyber Runner 2077",
			Description: "In a dystopian future, a mercenary outlaw navigates a city obsessed with power and body modification.",
			Type:        models.ContentTypeMovie,
			Genres:      []string{"Sci-Fi", "Action"},
			Country:     "USA",
			ReleaseYear: 2024,
			Rating:      8.9,
			PosterURL:   "https://picsum.photos/300/450?random=1",
			BannerURL:   "https://picsum.photos/1200/600?random=1",
			VideoURL:    sampleVideoBase + "BigBuckBunny.mp4",
			TrailerURL:  sampleVideoBase + "BigBuckBunny.mp4",
			Cast:        []string{"Keanu R.", "Ana D.", "Idris E."},
			Trending:    true,
		},
		{
			ID:          "2",
			Title:       "Seoul Nights",
			Description: "A gripping drama about a group of friends navigating the competitive world of fashion in Gangnam.",
			Type:        models.ContentTypeSeries,
			Genres:      []string{"Drama", "Romance"},
			Country:     "Korea",
			ReleaseYear: 2023,
			Rating:      9.2,
			PosterURL:   "https://picsum.photos/300/450?random=2",
			BannerURL:   "https://picsum.photos/1200/600?random=2",
			TrailerURL:  sampleVideoBase + "ElephantsDream.mp4",
			Cast:        []string{"Park S.", "Kim J.", "Lee M."},
			Trending:    true,
			Seasons: []models.Season{{
				ID:           "s1",
				SeasonNumber: 1,
				Episodes: []models.Episode{
					{
						ID:           "e1",
						Title:        "The Beginning",
						Duration:     "45m",
						Description:  "Pilot episode.",
						ThumbnailURL: "https://picsum.photos/200/120?random=101",
						VideoURL:     sampleVideoBase + "TearsOfSteel.mp4",
					},
					{
						ID:           "e2",
						Title:        "Betrayal",
						Duration:     "48m",
						Description:  "Secrets are revealed.",
						ThumbnailURL: "https://picsum.photos/200/120?random=102",
						VideoURL:     sampleVideoBase + "TearsOfSteel.mp4",
					},
				},
			}},
		},
		{
			ID:          "3",
			Title:       "The Ottoman Legacy",
			Description: "Historical epic tracing the rise of an empire through the eyes of a warrior.",
			Type:        models.ContentTypeSeries,
			Genres:      []string{"Action", "History"},
			Country:     "Turkey",
			ReleaseYear: 2022,
			Rating:      8.5,
			PosterURL:   "https://picsum.photos/300/450?random=3",
			BannerURL:   "https://picsum.photos/1200/600?random=3",
			TrailerURL:  sampleVideoBase + "ForBiggerBlazes.mp4",
			Cast:        []string{"Burak O.", "Engin A."},
			Seasons: []models.Season{{
				ID:           "s1",
				SeasonNumber: 1,
				Episodes: []models.Episode{{
					ID:           "e1",
					Title:        "Rise",
					Duration:     "60m",
					Description:  "The journey begins.",
					ThumbnailURL: "https://picsum.photos/200/120?random=103",
				}},
			}},
		},
		{
			ID:          "4",
			Title:       "Mumbai Shadows",
			Description: "An undercover cop infiltrates the underworld of Mumbai to avenge his partner.",
			Type:        models.ContentTypeMovie,
			Genres:      []string{"Action", "Thriller"},
			Country:     "India",
			ReleaseYear: 2023,
			Rating:      7.8,
			PosterURL:   "https://picsum.photos/300/450?random=4",
			BannerURL:   "https://picsum.photos/1200/600?random=4",
			VideoURL:    sampleVideoBase + "Sintel.mp4",
			TrailerURL:  sampleVideoBase + "Sintel.mp4",
			Cast:        []string{"Shah R.", "Deepika P."},
			Trending:    true,
		},
		{
			ID:          "5",
			Title:       "Dragon Spirit",
			Description: "A young martial artist discovers an ancient secret that could change the fate of China.",
			Type:        models.ContentTypeMovie,
			Genres:      []string{"Action", "Fantasy"},
			Country:     "China",
			ReleaseYear: 2021,
			Rating:      8.1,
			PosterURL:   "https://picsum.photos/300/450?random=5",
			BannerURL:   "https://picsum.photos/1200/600?random=5",
			VideoURL:    sampleVideoBase + "SubaruOutbackOnStreetAndDirt.mp4",
			TrailerURL:  sampleVideoBase + "SubaruOutbackOnStreetAndDirt.mp4",
			Cast:        []string{"Jackie C.", "Jet L."},
		},
	}
}

// DefaultUser returns a fresh copy of the seed profile.
func DefaultUser() models.UserProfile {
	return models.UserProfile{
		ID:        "u1",
		Name:      "John Doe",
		Email:     "john@abiflix.com",
		AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
		Watchlist: []string{"1", "3"},
		History:   []string{"2"},
		IsAdmin:   false,
	}
}
