package services

// Services defined in this package:
// - CatalogService: departments, courses and tags for the browse dropdowns
// - NoteService: note listing/filtering, detail lookup, soft delete/restore
// - ReviewService: note reviews and their soft delete/restore
// - UploadService: the blob upload + database write pipeline
// - StatsService: developer dashboard aggregations and trash listings
// - DeveloperAuthService: developer dashboard login tokens
