package managers

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"expodir/internal/models"
)

// UserManager owns the users table and credential handling. Passwords
// are always stored as bcrypt hashes.
type UserManager struct {
	db *gorm.DB
}

func NewUserManager(db *gorm.DB) *UserManager {
	return &UserManager{db: db}
}

// Create persists a new user. The plaintext password on the input is
// replaced with its hash before the row is written. A duplicate email is
// rejected with ErrDuplicateEmail.
func (m *UserManager) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Email != nil {
		existing, err := m.GetByEmail(ctx, *user.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := m.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (m *UserManager) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return firstOrNil[models.User](m.db.WithContext(ctx).Where("id = ?", id))
}

func (m *UserManager) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return firstOrNil[models.User](m.db.WithContext(ctx).Where("email = ?", email))
}

func (m *UserManager) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	return firstOrNil[models.User](
		m.db.WithContext(ctx).Where("username = ? OR email = ?", identifier, identifier))
}

func (m *UserManager) GetByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	err := m.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error
	return users, err
}

// Update applies a partial field set. Unknown field names are dropped
// with a warning; a supplied password is re-hashed before it is stored.
func (m *UserManager) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error) {
	fields = filterColumns("user", fields,
		"username", "email", "mobile_phone", "password", "role", "is_active", "last_login")

	if raw, ok := fields["password"]; ok {
		plain, ok := raw.(string)
		if !ok {
			delete(fields, "password")
		} else {
			hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			fields["password"] = string(hashed)
		}
	}

	user, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if len(fields) > 0 {
		if err := m.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return m.GetByID(ctx, id)
}

// Login verifies the credentials of a username-or-email identifier. A
// wrong identifier or password yields ErrInvalidCredentials, never a
// storage error.
func (m *UserManager) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := m.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := m.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (m *UserManager) UpdateLastLogin(ctx context.Context, id uint) error {
	now := time.Now().UTC()
	return m.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("last_login", now).Error
}

func (m *UserManager) Activate(ctx context.Context, id uint) error {
	result := m.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("is_active", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UserProfileManager manages the visitor-facing profile attached to a
// user, plus its preferred categories and social links.
type UserProfileManager struct {
	db *gorm.DB
}

func NewUserProfileManager(db *gorm.DB) *UserProfileManager {
	return &UserProfileManager{db: db}
}

func (m *UserProfileManager) GetByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	return firstOrNil[models.UserProfile](
		m.db.WithContext(ctx).
			Preload("PreferredCategories").
			Preload("SocialLinks").
			Where("user_id = ?", userID))
}

// CreateOrUpdate upserts the single profile row a user may have. Only
// supplied fields change on update.
func (m *UserProfileManager) CreateOrUpdate(ctx context.Context, userID uint, fields map[string]interface{}) (*models.UserProfile, error) {
	fields = filterColumns("user profile", fields,
		"full_name", "avatar", "bio", "country", "city")

	profile, err := m.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &models.UserProfile{UserID: userID}
		if err := m.db.WithContext(ctx).Create(profile).Error; err != nil {
			return nil, err
		}
	}
	if len(fields) > 0 {
		if err := m.db.WithContext(ctx).Model(profile).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return m.GetByUserID(ctx, userID)
}

func (m *UserProfileManager) AddPreferredCategory(ctx context.Context, userID uint, categoryName string) (*models.UserPreferredCategory, error) {
	profile, err := m.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return addChild(ctx, m.db, &models.UserPreferredCategory{
		UserProfileID: profile.ID,
		CategoryName:  categoryName,
	})
}

func (m *UserProfileManager) AddSocialLink(ctx context.Context, userID uint, platform, url string) (*models.UserSocialLink, error) {
	profile, err := m.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return addChild(ctx, m.db, &models.UserSocialLink{
		UserProfileID: profile.ID,
		Platform:      platform,
		URL:           url,
	})
}
