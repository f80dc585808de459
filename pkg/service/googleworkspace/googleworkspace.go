package googleworkspace

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"sync"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const passwordLength = 16

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// Service is the Google Workspace identity adapter. It owns its own
// service-account credentials and is safe to reuse across runs.
type Service struct {
	serviceAccountEmail string
	privateKey          string
	adminEmail          string
	customerID          string
	domain              string

	mu  sync.Mutex
	svc *admin.Service
}

// New creates a Google Workspace adapter. The adminEmail is the
// directory admin the service account impersonates; domain is the
// workspace domain used when generating addresses.
func New(serviceAccountEmail, privateKey, adminEmail, customerID, domain string) *Service {
	if customerID == "" {
		customerID = "my_customer"
	}
	return &Service{
		serviceAccountEmail: serviceAccountEmail,
		privateKey:          privateKey,
		adminEmail:          adminEmail,
		customerID:          customerID,
		domain:              domain,
	}
}

// IsConfigured reports whether credentials are present
func (s *Service) IsConfigured() bool {
	return s.serviceAccountEmail != "" && s.privateKey != "" && s.adminEmail != ""
}

func (s *Service) adminService(ctx context.Context) (*admin.Service, error) {
	if !s.IsConfigured() {
		return nil, goerr.Wrap(model.ErrNotConfigured, "google workspace credentials missing")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.svc != nil {
		return s.svc, nil
	}

	conf := &jwt.Config{
		Email:      s.serviceAccountEmail,
		PrivateKey: []byte(s.privateKey),
		Subject:    s.adminEmail,
		Scopes:     []string{admin.AdminDirectoryUserScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := admin.NewService(ctx, option.WithHTTPClient(conf.Client(context.Background())))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create admin directory service")
	}
	s.svc = svc
	return svc, nil
}

// CreateAccount creates a workspace user. With an empty email a unique
// address is generated from the name. The initial password is random
// and must be changed at first login.
func (s *Service) CreateAccount(ctx context.Context, firstName, lastName, email string) (*model.IdentityAccount, error) {
	svc, err := s.adminService(ctx)
	if err != nil {
		return nil, err
	}

	if email == "" {
		email, err = s.generateUniqueEmail(ctx, firstName, lastName)
		if err != nil {
			return nil, err
		}
	}

	password, err := randomPassword(passwordLength)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate password")
	}

	user := &admin.User{
		PrimaryEmail: email,
		Name: &admin.UserName{
			GivenName:  firstName,
			FamilyName: lastName,
		},
		Password:                  password,
		ChangePasswordAtNextLogin: true,
	}

	created, err := svc.Users.Insert(user).Context(ctx).Do()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create workspace user", goerr.V("email", email))
	}

	ctxlog.From(ctx).Info("Workspace account created", "email", created.PrimaryEmail)
	return &model.IdentityAccount{
		Email:     created.PrimaryEmail,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// DeleteAccount removes a workspace user. A missing account is treated
// as already removed.
func (s *Service) DeleteAccount(ctx context.Context, email string) error {
	svc, err := s.adminService(ctx)
	if err != nil {
		return err
	}

	if err := svc.Users.Delete(email).Context(ctx).Do(); err != nil {
		if isNotFound(err) {
			ctxlog.From(ctx).Info("Workspace account already absent", "email", email)
			return nil
		}
		return goerr.Wrap(err, "failed to delete workspace user", goerr.V("email", email))
	}
	return nil
}

// generateUniqueEmail probes candidate addresses until one is free
func (s *Service) generateUniqueEmail(ctx context.Context, firstName, lastName string) (string, error) {
	for n := 1; n <= maxEmailVariants; n++ {
		candidate := EmailCandidate(firstName, lastName, s.domain, n)
		if candidate == "" {
			return "", goerr.New("cannot derive email from name",
				goerr.V("firstName", firstName), goerr.V("lastName", lastName))
		}

		exists, err := s.emailExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", goerr.New("all email variants taken",
		goerr.V("firstName", firstName), goerr.V("lastName", lastName))
}

func (s *Service) emailExists(ctx context.Context, email string) (bool, error) {
	svc, err := s.adminService(ctx)
	if err != nil {
		return false, err
	}

	_, err = svc.Users.Get(email).Context(ctx).Do()
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to look up workspace user", goerr.V("email", email))
	}
	return true, nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 404
	}
	return false
}

func randomPassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out), nil
}
