package handler

type genreRequest struct {
	Name string `json:"name" validate:"notblank,max=50"`
}

type genreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
