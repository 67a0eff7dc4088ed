package payload

import (
	"chainboard/internal/core"

	"github.com/jellydator/validation"
)

type AskQuestionRequest struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
}

func (q AskQuestionRequest) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Identifier, validation.Required, validation.Match(identifierRegex)),
		validation.Field(&q.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&q.Content, validation.Required),
		validation.Field(&q.Category, validation.Required, validation.Length(1, 64)),
	)
}

func (q AskQuestionRequest) ToAction(authorWallet string) core.Action {
	return core.Action{
		Kind:         core.KindAskQuestion,
		Identifier:   q.Identifier,
		AuthorWallet: authorWallet,
		Title:        q.Title,
		Content:      q.Content,
		Category:     q.Category,
	}
}
