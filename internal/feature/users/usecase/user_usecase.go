package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"jobboard_backend/internal/feature/users/domain/entity"
	"jobboard_backend/internal/platform/sanitize"
	"jobboard_backend/internal/platform/storage"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailTaken if the email
	// unique index rejects the write.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by (lowercased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id bson.ObjectID) (*entity.User, error)

	// Update saves the full user document. Returns ErrEmailTaken on an
	// email collision and ErrUserNotFound if the document vanished.
	Update(ctx context.Context, user *entity.User) error
}

// TokenGenerator issues the signed auth token delivered as a cookie.
type TokenGenerator interface {
	GenerateToken(userID, role string) (string, error)
}

// FileUploader forwards a buffered upload to object storage and returns
// its public URL.
type FileUploader interface {
	Upload(ctx context.Context, f *storage.File) (string, error)
}

// TokenRevoker invalidates an issued token before its natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// RegisterInput carries the validated registration fields. Profile is the
// optional embedded profile supplied at account creation.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
	Profile  ProfileInput
}

// ProfileInput carries the optional profile fields accepted at
// registration. Nil slices and a nil Social leave the defaults in place.
type ProfileInput struct {
	Bio        string
	Skills     []string
	Education  []entity.Education
	Experience []entity.Experience
	Social     *entity.SocialLinks
}

// ProfilePatch carries the optional profile-update fields. Zero values
// leave the stored field unchanged (shallow merge of top-level keys).
type ProfilePatch struct {
	Name       string
	Phone      string
	Email      string
	Bio        string
	Skills     []string
	Education  []entity.Education
	Experience []entity.Experience
	Social     *entity.SocialLinks
}

type userUsecase struct {
	users       UserRepository
	tokens      TokenGenerator
	uploader    FileUploader
	revocations TokenRevoker
}

// NewUserUsecase creates the users business logic. uploader and revocations
// may be nil when object storage or the revocation store are not configured.
func NewUserUsecase(users UserRepository, tokens TokenGenerator, uploader FileUploader, revocations TokenRevoker) *userUsecase {
	return &userUsecase{users: users, tokens: tokens, uploader: uploader, revocations: revocations}
}

// Register creates a new account. The optional file becomes the profile
// image. The password is stored as a bcrypt hash (cost 10).
func (u *userUsecase) Register(ctx context.Context, in RegisterInput, file *storage.File) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     sanitize.String(in.Name),
		Email:    normalizeEmail(in.Email),
		Phone:    sanitize.String(in.Phone),
		Password: string(hashed),
		Role:     in.Role,
	}
	if err := applyProfile(user, in.Profile); err != nil {
		return nil, err
	}

	if file != nil {
		if u.uploader == nil {
			return nil, fmt.Errorf("object storage is not configured")
		}
		imgURL, err := u.uploader.Upload(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile image: %w", err)
		}
		user.Profile.ProfileImage = imgURL
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates the account and returns the user with a signed token.
// The declared role must match the stored one: valid credentials presented
// under the wrong role are rejected.
func (u *userUsecase) Login(ctx context.Context, email, password, role string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if user.Role != role {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Logout revokes the presented token id when a revocation store is
// configured. The cookie itself is cleared by the transport layer, so
// logout always succeeds from the client's point of view.
func (u *userUsecase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if u.revocations == nil || tokenID == "" {
		return nil
	}
	return u.revocations.Revoke(ctx, tokenID, expiresAt)
}

// UpdateProfile loads the user, shallow-merges the sanitized patch, and
// saves the full document. An email change is guarded by the unique index.
// The optional file branches on MIME type: images become the profile image,
// anything else becomes the stored resume.
func (u *userUsecase) UpdateProfile(ctx context.Context, userID bson.ObjectID, patch ProfilePatch, file *storage.File) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != "" {
		user.Email = normalizeEmail(patch.Email)
	}
	if patch.Name != "" {
		user.Name = sanitize.String(patch.Name)
	}
	if patch.Phone != "" {
		user.Phone = sanitize.String(patch.Phone)
	}
	if patch.Bio != "" {
		user.Profile.Bio = sanitize.String(patch.Bio)
	}
	if patch.Skills != nil {
		user.Profile.Skills = sanitize.Strings(patch.Skills)
	}
	if patch.Education != nil {
		user.Profile.Education = sanitizeEducation(patch.Education)
	}
	if patch.Experience != nil {
		user.Profile.Experience = sanitizeExperience(patch.Experience)
	}
	if patch.Social != nil {
		if err := validateSocialLinks(*patch.Social); err != nil {
			return nil, err
		}
		user.Profile.Social = *patch.Social
	}

	if file != nil {
		if u.uploader == nil {
			return nil, fmt.Errorf("object storage is not configured")
		}
		fileURL, err := u.uploader.Upload(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}
		if file.IsImage() {
			user.Profile.ProfileImage = fileURL
		} else {
			user.Profile.Resume = fileURL
			user.Profile.ResumeOriginalName = file.Name
		}
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID returns a single user.
func (u *userUsecase) GetByID(ctx context.Context, id bson.ObjectID) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// applyProfile copies the sanitized registration profile onto the user.
func applyProfile(user *entity.User, p ProfileInput) error {
	if p.Bio != "" {
		user.Profile.Bio = sanitize.String(p.Bio)
	}
	if p.Skills != nil {
		user.Profile.Skills = sanitize.Strings(p.Skills)
	}
	if p.Education != nil {
		user.Profile.Education = sanitizeEducation(p.Education)
	}
	if p.Experience != nil {
		user.Profile.Experience = sanitizeExperience(p.Experience)
	}
	if p.Social != nil {
		if err := validateSocialLinks(*p.Social); err != nil {
			return err
		}
		user.Profile.Social = *p.Social
	}
	return nil
}

// normalizeEmail makes email uniqueness case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeEducation(in []entity.Education) []entity.Education {
	out := make([]entity.Education, len(in))
	for i, e := range in {
		e.Institution = sanitize.String(e.Institution)
		e.Degree = sanitize.String(e.Degree)
		e.FieldOfStudy = sanitize.String(e.FieldOfStudy)
		out[i] = e
	}
	return out
}

func sanitizeExperience(in []entity.Experience) []entity.Experience {
	out := make([]entity.Experience, len(in))
	for i, e := range in {
		e.Title = sanitize.String(e.Title)
		e.From = sanitize.String(e.From)
		e.To = sanitize.String(e.To)
		e.Description = sanitize.String(e.Description)
		out[i] = e
	}
	return out
}

// socialHosts maps each platform link to the hosts it must point at.
var socialHosts = map[string][]string{
	"linkedin": {"linkedin.com", "www.linkedin.com"},
	"github":   {"github.com", "www.github.com"},
	"twitter":  {"twitter.com", "www.twitter.com", "x.com", "www.x.com"},
}

func validateSocialLinks(s entity.SocialLinks) error {
	checks := []struct {
		platform string
		link     string
	}{
		{"linkedin", s.LinkedIn},
		{"github", s.GitHub},
		{"twitter", s.Twitter},
	}
	for _, c := range checks {
		if c.link == "" {
			continue
		}
		parsed, err := url.Parse(c.link)
		if err != nil || parsed.Scheme != "https" {
			return fmt.Errorf("%w: %s", ErrInvalidSocialLink, c.platform)
		}
		ok := false
		for _, host := range socialHosts[c.platform] {
			if parsed.Host == host {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidSocialLink, c.platform)
		}
	}
	// Portfolio may live anywhere but must still be a well-formed https URL.
	if s.Portfolio != "" {
		parsed, err := url.Parse(s.Portfolio)
		if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
			return fmt.Errorf("%w: portfolio", ErrInvalidSocialLink)
		}
	}
	return nil
}
