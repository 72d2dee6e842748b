package dto

type ListMessagesReq struct{}

type ListMessagesResp struct {
	Messages []Message `json:"messages"`
}

type Message struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

type PostMessageReq struct {
	Content string `json:"content" form:"content" validate:"required,max=1000"`
}

type PostMessageResp struct {
	Message Message `json:"message"`
}

type ModeResp struct {
	Mode string `json:"mode"`
}
