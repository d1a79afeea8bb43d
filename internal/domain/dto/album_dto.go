package dto

type CreateAlbumRequest struct {
	Title         string   `json:"title" validate:"required,min=1"`
	Description   string   `json:"description"`
	CoverImageURL string   `json:"coverImageUrl"`
	PublishedAt   string   `json:"publishedAt"` // RFC3339, optional
	ModelIDs      []string `json:"modelIds"`
	TagIDs        []string `json:"tagIds"`
}

type UpdateAlbumRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1"`
	Description   *string  `json:"description"`
	CoverImageURL *string  `json:"coverImageUrl"`
	PublishedAt   *string  `json:"publishedAt"`
	ModelIDs      []string `json:"modelIds"`
	TagIDs        []string `json:"tagIds"`
}

type AlbumListQuery struct {
	ListQuery
	Keyword string `query:"keyword"`
	ModelID string `query:"modelId"`
	TagID   string `query:"tagId"`
}
