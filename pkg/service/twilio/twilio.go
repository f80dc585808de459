package twilio

import (
	"context"
	"strconv"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	twilio "github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
	messaging "github.com/twilio/twilio-go/rest/messaging/v1"
)

// Service is the Twilio telephony adapter. Purchased numbers are
// attached to a messaging service so outbound SMS routing works
// without per-number setup.
type Service struct {
	client              *twilio.RestClient
	messagingServiceSID string
	countryCode         string
}

// New creates a Twilio adapter. messagingServiceSID may be empty, in
// which case AttachToRoutingGroup is a no-op.
func New(accountSID, authToken, messagingServiceSID string) *Service {
	var client *twilio.RestClient
	if accountSID != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return &Service{
		client:              client,
		messagingServiceSID: messagingServiceSID,
		countryCode:         "US",
	}
}

// IsConfigured reports whether credentials are present
func (s *Service) IsConfigured() bool {
	return s.client != nil
}

// SearchAvailable looks up purchasable local numbers matching the
// prefix. A three-digit numeric prefix is treated as an area code;
// anything longer becomes a digit-pattern search.
func (s *Service) SearchAvailable(ctx context.Context, prefix string, limit int) ([]model.AvailableNumber, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	params := &api.ListAvailablePhoneNumberLocalParams{}
	params.SetLimit(limit)
	if code, err := strconv.Atoi(prefix); err == nil && len(prefix) == 3 {
		params.SetAreaCode(code)
	} else {
		params.SetContains(prefix + "*")
	}

	resp, err := s.client.Api.ListAvailablePhoneNumberLocal(s.countryCode, params)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search available numbers", goerr.V("prefix", prefix))
	}

	numbers := make([]model.AvailableNumber, 0, len(resp))
	for _, n := range resp {
		if n.PhoneNumber == nil {
			continue
		}
		num := model.AvailableNumber{Number: *n.PhoneNumber}
		if n.Locality != nil {
			num.Locality = *n.Locality
		}
		if n.Region != nil {
			num.Region = *n.Region
		}
		numbers = append(numbers, num)
	}
	return numbers, nil
}

// Purchase buys the given number
func (s *Service) Purchase(ctx context.Context, number, friendlyName string) (*model.PhoneNumber, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	params := &api.CreateIncomingPhoneNumberParams{}
	params.SetPhoneNumber(number)
	if friendlyName != "" {
		params.SetFriendlyName(friendlyName)
	}

	created, err := s.client.Api.CreateIncomingPhoneNumber(params)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to purchase number", goerr.V("number", number))
	}
	if created.Sid == nil {
		return nil, goerr.New("twilio returned a number without SID", goerr.V("number", number))
	}

	purchased := &model.PhoneNumber{
		SID:    types.NumberSID(*created.Sid),
		Number: number,
	}
	if created.PhoneNumber != nil {
		purchased.Number = *created.PhoneNumber
	}
	if created.FriendlyName != nil {
		purchased.FriendlyName = *created.FriendlyName
	}

	ctxlog.From(ctx).Info("Twilio number purchased",
		"number", purchased.Number, "sid", purchased.SID)
	return purchased, nil
}

// AttachToRoutingGroup adds a purchased number to the messaging service
func (s *Service) AttachToRoutingGroup(ctx context.Context, sid types.NumberSID) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if s.messagingServiceSID == "" {
		ctxlog.From(ctx).Warn("no messaging service configured, skipping attach", "sid", sid)
		return nil
	}

	params := &messaging.CreatePhoneNumberParams{}
	params.SetPhoneNumberSid(string(sid))
	if _, err := s.client.MessagingV1.CreatePhoneNumber(s.messagingServiceSID, params); err != nil {
		return goerr.Wrap(err, "failed to attach number to messaging service",
			goerr.V("sid", sid), goerr.V("messagingServiceSID", s.messagingServiceSID))
	}
	return nil
}

// ListAll fetches every number owned by the account
func (s *Service) ListAll(ctx context.Context) ([]model.PhoneNumber, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	resp, err := s.client.Api.ListIncomingPhoneNumber(&api.ListIncomingPhoneNumberParams{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list owned numbers")
	}

	numbers := make([]model.PhoneNumber, 0, len(resp))
	for _, n := range resp {
		if n.Sid == nil || n.PhoneNumber == nil {
			continue
		}
		num := model.PhoneNumber{
			SID:    types.NumberSID(*n.Sid),
			Number: *n.PhoneNumber,
		}
		if n.FriendlyName != nil {
			num.FriendlyName = *n.FriendlyName
		}
		numbers = append(numbers, num)
	}
	return numbers, nil
}

// Release permanently releases the number back to Twilio
func (s *Service) Release(ctx context.Context, sid types.NumberSID) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := s.client.Api.DeleteIncomingPhoneNumber(string(sid), &api.DeleteIncomingPhoneNumberParams{}); err != nil {
		return goerr.Wrap(err, "failed to release number", goerr.V("sid", sid))
	}
	ctxlog.From(ctx).Info("Twilio number released", "sid", sid)
	return nil
}

// ready guards every call: the twilio-go client does not take a
// context, so cancellation is checked up front instead
func (s *Service) ready(ctx context.Context) error {
	if s.client == nil {
		return goerr.Wrap(model.ErrNotConfigured, "twilio credentials missing")
	}
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "operation cancelled")
	}
	return nil
}
