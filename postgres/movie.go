package postgres

import (
	"context"
	"time"

	"moviefetch/movie"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieModel represents the database model for catalog movies.
// search_vector is generated in SQL migration and not mapped here.
type MovieModel struct {
	ID               uint    `gorm:"primaryKey"`
	TMDBID           int     `gorm:"column:tmdb_id;not null;uniqueIndex"`
	Title            string  `gorm:"not null"`
	OriginalTitle    string  `gorm:"not null;default:''"`
	Overview         string  `gorm:"not null;default:''"`
	ReleaseDate      string  `gorm:"not null;default:''"`
	PosterPath       string  `gorm:"not null;default:''"`
	BackdropPath     string  `gorm:"not null;default:''"`
	VoteAverage      float64 `gorm:"not null;default:0"`
	VoteCount        int     `gorm:"not null;default:0"`
	Popularity       float64 `gorm:"not null;default:0"`
	Adult            bool    `gorm:"not null;default:false"`
	OriginalLanguage string  `gorm:"not null;default:''"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Catalog interface
// and provides PostgreSQL full-text search.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Upsert inserts movies or refreshes the ones already stored under the same tmdb_id.
func (r *MovieRepository) Upsert(ctx context.Context, movies []movie.Summary) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	models := make([]MovieModel, len(movies))
	for i, m := range movies {
		models[i] = toModel(m)
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tmdb_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "original_title", "overview", "release_date",
			"poster_path", "backdrop_path", "vote_average", "vote_count",
			"popularity", "adult", "original_language", "updated_at",
		}),
	}).Create(&models)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *MovieRepository) Search(ctx context.Context, query string, limit int) ([]movie.Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	const sql = `
SELECT id, tmdb_id, title, original_title, overview, release_date, poster_path,
	backdrop_path, vote_average, vote_count, popularity, adult, original_language,
	created_at, updated_at
FROM movies
WHERE search_vector @@ websearch_to_tsquery('english', ?)
ORDER BY ts_rank(search_vector, websearch_to_tsquery('english', ?)) DESC, popularity DESC, tmdb_id
LIMIT ?`

	var models []MovieModel
	if err := r.db.WithContext(ctx).Raw(sql, query, query, limit).Scan(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Summary, len(models))
	for i, model := range models {
		movies[i] = toSummary(model)
	}
	return movies, nil
}

func toModel(m movie.Summary) MovieModel {
	return MovieModel{
		TMDBID:           m.ID,
		Title:            m.Title,
		OriginalTitle:    m.OriginalTitle,
		Overview:         m.Overview,
		ReleaseDate:      m.ReleaseDate,
		PosterPath:       m.PosterPath,
		BackdropPath:     m.BackdropPath,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		Popularity:       m.Popularity,
		Adult:            m.Adult,
		OriginalLanguage: m.OriginalLanguage,
	}
}

func toSummary(model MovieModel) movie.Summary {
	return movie.Summary{
		ID:               model.TMDBID,
		Title:            model.Title,
		OriginalTitle:    model.OriginalTitle,
		Overview:         model.Overview,
		ReleaseDate:      model.ReleaseDate,
		PosterPath:       model.PosterPath,
		BackdropPath:     model.BackdropPath,
		VoteAverage:      model.VoteAverage,
		VoteCount:        model.VoteCount,
		Popularity:       model.Popularity,
		Adult:            model.Adult,
		OriginalLanguage: model.OriginalLanguage,
	}
}
