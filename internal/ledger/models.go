package ledger

import "time"

// Call describes a state-mutating board contract invocation. Args are packed
// against the board ABI; the contract hashes identifiers internally.
type Call struct {
	Method string
	Args   []any
}

func AskCall(identifier, category string) Call {
	return Call{Method: "askQuestion", Args: []any{identifier, category}}
}

func AnswerCall(identifier, questionID string) Call {
	return Call{Method: "submitAnswer", Args: []any{identifier, questionID}}
}

func BestAnswerCall(answerID, questionID string) Call {
	return Call{Method: "selectBestAnswer", Args: []any{answerID, questionID}}
}

// Receipt is produced exactly once per confirmed submission.
type Receipt struct {
	TransactionHash string
	BlockNumber     uint64
	ConfirmedAt     time.Time
}
