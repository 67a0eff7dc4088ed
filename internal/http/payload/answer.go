package payload

import (
	"chainboard/internal/core"

	"github.com/jellydator/validation"
)

type SubmitAnswerRequest struct {
	Identifier string `json:"identifier"`
	Content    string `json:"content"`
}

func (a SubmitAnswerRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Identifier, validation.Required, validation.Match(identifierRegex)),
		validation.Field(&a.Content, validation.Required),
	)
}

func (a SubmitAnswerRequest) ToAction(questionID, authorWallet string) core.Action {
	return core.Action{
		Kind:         core.KindSubmitAnswer,
		Identifier:   a.Identifier,
		AuthorWallet: authorWallet,
		Content:      a.Content,
		QuestionID:   questionID,
	}
}

type BestAnswerRequest struct {
	AnswerID string `json:"answerId"`
}

func (b BestAnswerRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.AnswerID, validation.Required, validation.Match(identifierRegex)),
	)
}

func (b BestAnswerRequest) ToAction(questionID, authorWallet string) core.Action {
	return core.Action{
		Kind:         core.KindSelectBestAnswer,
		Identifier:   b.AnswerID,
		AuthorWallet: authorWallet,
		QuestionID:   questionID,
	}
}
