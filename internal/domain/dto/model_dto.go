package dto

type CreateModelRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	Alias        string `json:"alias"`
	AvatarURL    string `json:"avatarUrl"`
	Bio          string `json:"bio"`
	HomepageURL  string `json:"homepageUrl" validate:"omitempty,url"`
	InstagramURL string `json:"instagramUrl" validate:"omitempty,url"`
	WeiboURL     string `json:"weiboUrl" validate:"omitempty,url"`
	XURL         string `json:"xUrl" validate:"omitempty,url"`
	YoutubeURL   string `json:"youtubeUrl" validate:"omitempty,url"`
}

type UpdateModelRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Alias        *string `json:"alias"`
	AvatarURL    *string `json:"avatarUrl"`
	Bio          *string `json:"bio"`
	HomepageURL  *string `json:"homepageUrl" validate:"omitempty,url"`
	InstagramURL *string `json:"instagramUrl" validate:"omitempty,url"`
	WeiboURL     *string `json:"weiboUrl" validate:"omitempty,url"`
	XURL         *string `json:"xUrl" validate:"omitempty,url"`
	YoutubeURL   *string `json:"youtubeUrl" validate:"omitempty,url"`
}

type ModelListQuery struct {
	ListQuery
	Keyword string `query:"keyword"`
}
