package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/kerem/notesphere/internal/app/models/dto"
)

// noteListSelect is the base join for the note listing: live notes with
// their course, concatenated distinct tag names and the average rating over
// live reviews. Filters narrow this join before grouping.
func noteListSelect() squirrel.SelectBuilder {
	return squirrel.Select(
		"n.note_id",
		"n.title",
		"c.name AS course_name",
		"string_agg(DISTINCT t.name, ',') AS tags",
		"avg(r.rating)::float8 AS avg_rating",
	).From("notes n").
		LeftJoin("courses c ON n.course_id = c.course_id").
		LeftJoin("note_tags nt ON n.note_id = nt.note_id").
		LeftJoin("tags t ON nt.tag_id = t.tag_id").
		LeftJoin("reviews r ON n.note_id = r.note_id AND r.is_deleted = FALSE").
		Where(squirrel.Eq{"n.is_deleted": false}).
		PlaceholderFormat(squirrel.Dollar)
}

// buildNoteListQuery applies the optional conjunctive filters and the
// allow-listed sort order. Every user-supplied value goes through a bind
// placeholder.
func buildNoteListQuery(filter *dto.NoteFilterRequest) (string, []interface{}, error) {
	builder := noteListSelect()

	if filter.DepartmentID != nil {
		builder = builder.Where(squirrel.Eq{"c.department_id": *filter.DepartmentID})
	}
	if filter.CourseID != nil {
		builder = builder.Where(squirrel.Eq{"n.course_id": *filter.CourseID})
	}
	if filter.TagID != nil {
		builder = builder.Where(squirrel.Eq{"t.tag_id": *filter.TagID})
	}

	builder = builder.GroupBy("n.note_id", "c.name")

	switch filter.SortBy {
	case dto.SortByDate:
		builder = builder.OrderBy("n.created_at DESC")
	case dto.SortByRating:
		// Unrated notes sink to the bottom; newer notes win ties
		builder = builder.OrderBy("avg_rating DESC NULLS LAST", "n.note_id DESC")
	default:
		builder = builder.OrderBy("n.note_id")
	}

	return builder.ToSql()
}

// buildNoteDetailQuery extends the listing join with file URLs for a single
// live note.
func buildNoteDetailQuery(noteID int64) (string, []interface{}, error) {
	return squirrel.Select(
		"n.note_id",
		"n.title",
		"n.description",
		"n.created_at",
		"c.name AS course_name",
		"string_agg(DISTINCT t.name, ',') AS tags",
		"string_agg(DISTINCT f.file_url, ',') AS file_urls",
		"avg(r.rating)::float8 AS avg_rating",
	).From("notes n").
		LeftJoin("courses c ON n.course_id = c.course_id").
		LeftJoin("note_tags nt ON n.note_id = nt.note_id").
		LeftJoin("tags t ON nt.tag_id = t.tag_id").
		LeftJoin("files f ON n.note_id = f.note_id").
		LeftJoin("reviews r ON n.note_id = r.note_id AND r.is_deleted = FALSE").
		Where(squirrel.Eq{"n.note_id": noteID, "n.is_deleted": false}).
		GroupBy("n.note_id", "c.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
