package repository

import "time"

type User struct {
	WalletAddress string    `gorm:"primaryKey;size:42"` // lowercased 0x + 40 hex
	TotalPoints   int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

type Question struct {
	ID            string    `gorm:"primaryKey;size:64"` // client-generated identifier, shared with the ledger event
	AuthorWallet  string    `gorm:"size:42;not null;index"`
	Title         string    `gorm:"size:255;not null"`
	Content       string    `gorm:"type:text;not null"`
	Category      string    `gorm:"size:64;not null;index"`
	BestAnswerID  *string   `gorm:"size:64"` // null until resolved, set exactly once
	TxHash        string    `gorm:"size:66;not null"`
	PointsAwarded bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

type Answer struct {
	ID           string `gorm:"primaryKey;size:64"`
	QuestionID   string `gorm:"size:64;not null;index"`
	AuthorWallet string `gorm:"size:42;not null;index"`
	Content      string `gorm:"type:text;not null"`
	IsBestAnswer bool   `gorm:"not null;default:false"`
	TxHash       string `gorm:"size:66;not null"`
	// award claims, flipped by conditional update before the point increment
	PointsAwarded     bool      `gorm:"not null;default:false"`
	BestPointsAwarded bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

// FundingRecord existence is the sole authority for "already funded". The row
// is inserted as a claim before the transfer and completed with the hash after
// confirmation.
type FundingRecord struct {
	WalletAddress   string    `gorm:"primaryKey;size:42"`
	TransactionHash string    `gorm:"size:66"` // empty while the claim is in flight
	Amount          string    `gorm:"size:100;not null"` // wei
	IPAddress       string    `gorm:"size:64"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

type Category struct {
	ID    string `gorm:"primaryKey;autoIncrement:false"`
	Name  string `gorm:"size:64;uniqueIndex;not null"`
	Slug  string `gorm:"size:64;uniqueIndex;not null"`
	Color string `gorm:"size:16;not null"`
}
