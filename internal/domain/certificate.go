package domain

import (
	"fmt"
	"time"
)

// Certificate is a student completion certificate as stored by a repository.
// Optional fields are nil when the caller did not provide them.
type Certificate struct {
	ID              string    `json:"id"`
	StudentName     string    `json:"studentName"`
	CourseName      string    `json:"courseName"`
	Commission      string    `json:"commission"`
	CompletionDate  string    `json:"completionDate"`
	DiscordHandle   *string   `json:"discordHandle"`
	PersonalMessage *string   `json:"personalMessage"`
	Pronouns        *string   `json:"pronouns"`
	CertificateID   string    `json:"certificateId"`
	FileURL         *string   `json:"fileUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Clone returns a deep copy so callers never share optional field storage with the store.
func (c Certificate) Clone() Certificate {
	c.DiscordHandle = cloneString(c.DiscordHandle)
	c.PersonalMessage = cloneString(c.PersonalMessage)
	c.Pronouns = cloneString(c.Pronouns)
	c.FileURL = cloneString(c.FileURL)
	return c
}

// CertificateInput is the normalized creation payload produced by ValidateInput.
type CertificateInput struct {
	StudentName     string  `json:"studentName" validate:"required"`
	CourseName      string  `json:"courseName" validate:"required"`
	Commission      string  `json:"commission" validate:"required"`
	CompletionDate  string  `json:"completionDate" validate:"required"`
	DiscordHandle   *string `json:"discordHandle"`
	PersonalMessage *string `json:"personalMessage"`
	Pronouns        *string `json:"pronouns"`
	FileURL         *string `json:"fileUrl"`
}

// NewCertificate builds the stored form of in. The repository supplies identity and time.
func NewCertificate(in CertificateInput, id, certificateID string, createdAt time.Time) Certificate {
	return Certificate{
		ID:              id,
		StudentName:     in.StudentName,
		CourseName:      in.CourseName,
		Commission:      in.Commission,
		CompletionDate:  in.CompletionDate,
		DiscordHandle:   cloneString(in.DiscordHandle),
		PersonalMessage: cloneString(in.PersonalMessage),
		Pronouns:        cloneString(in.Pronouns),
		CertificateID:   certificateID,
		FileURL:         cloneString(in.FileURL),
		CreatedAt:       createdAt,
	}
}

const certificateSuffixModulo = 1_000_000

// CertificateIDSuffix returns the trailing six digits of the epoch milliseconds of t.
func CertificateIDSuffix(t time.Time) int {
	return int(t.UnixMilli() % certificateSuffixModulo)
}

// FormatCertificateID renders the human facing identifier, e.g. CERT-2025-048213.
func FormatCertificateID(year, suffix int) string {
	suffix %= certificateSuffixModulo
	if suffix < 0 {
		suffix += certificateSuffixModulo
	}
	return fmt.Sprintf("CERT-%04d-%06d", year, suffix)
}

// NextCertificateSuffix advances a suffix after a collision.
func NextCertificateSuffix(suffix int) int {
	return (suffix + 1) % certificateSuffixModulo
}

// GenerateCertificateID derives the identifier for a certificate issued at t.
func GenerateCertificateID(t time.Time) string {
	return FormatCertificateID(t.Year(), CertificateIDSuffix(t))
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
