package models

// Role determines which protected surfaces a user can reach.
type Role string

const (
	RoleVisitor   Role = "visitor"
	RoleExhibitor Role = "exhibitor"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// ApprovalStatus is the moderation state for company profiles and
// verification documents.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ExpoStatus is the lifecycle state of an exhibition.
type ExpoStatus string

const (
	ExpoDraft ExpoStatus = "draft"
	ExpoLive  ExpoStatus = "live"
	ExpoEnded ExpoStatus = "ended"
)

func ValidExpoStatus(status ExpoStatus) bool {
	switch status {
	case ExpoDraft, ExpoLive, ExpoEnded:
		return true
	}
	return false
}

// VipLevel ranks an exhibitor inside a single exhibition.
type VipLevel string

const (
	VipNormal   VipLevel = "normal"
	VipSilver   VipLevel = "silver"
	VipGold     VipLevel = "gold"
	VipPlatinum VipLevel = "platinum"
)

// FavoriteType names the kind of record a favorite points at.
type FavoriteType string

const (
	FavoriteCompany    FavoriteType = "company"
	FavoriteExhibition FavoriteType = "exhibition"
	FavoriteProduct    FavoriteType = "product"
	FavoriteMessage    FavoriteType = "message"
)

// ViewTarget names the kind of record a view was recorded against.
type ViewTarget string

const (
	ViewCompany    ViewTarget = "company"
	ViewExhibition ViewTarget = "exhibition"
	ViewProduct    ViewTarget = "product"
)

// TokenType classifies issued tokens. Access and reset tokens are the
// ones the auth flow mints today; refresh and verify round out the
// vocabulary the token table stores.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
	TokenReset   TokenType = "reset"
	TokenVerify  TokenType = "verify"
)
