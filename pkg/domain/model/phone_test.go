package model_test

import (
	"testing"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestMatchOwnedNumbers(t *testing.T) {
	prefixes := []string{"650"}
	userID := types.CRMUserID("ghl-user-0001")

	numbers := []model.PhoneNumber{
		{SID: "PN1", Number: "+16505550100"},
		{SID: "PN2", Number: "+16505550200"},
		{SID: "PN3", Number: "+12125550300"},
		{SID: "PN4", Number: "+16505550400"},
	}
	links := []model.NumberLink{
		{Number: "+16505550100", LinkedUserID: userID},
		{Number: "+16505550200", LinkedUserID: "ghl-user-0002"},
		{Number: "+12125550300", LinkedUserID: userID},
	}

	t.Run("matches only linked numbers with a reserved prefix", func(t *testing.T) {
		owned := model.MatchOwnedNumbers(numbers, links, userID, prefixes)
		gt.A(t, owned).Length(1)
		gt.Equal(t, types.NumberSID("PN1"), owned[0].SID)
	})

	t.Run("no name-based fallback: unlinked numbers never match", func(t *testing.T) {
		owned := model.MatchOwnedNumbers(numbers, nil, userID, prefixes)
		gt.A(t, owned).Length(0)
	})

	t.Run("formatting differences do not break the join", func(t *testing.T) {
		formatted := []model.NumberLink{
			{Number: "(650) 555-0100", LinkedUserID: userID},
		}
		owned := model.MatchOwnedNumbers(
			[]model.PhoneNumber{{SID: "PN1", Number: "+16505550100"}},
			formatted, userID, prefixes)
		gt.A(t, owned).Length(1)
	})

	t.Run("empty inputs are safe", func(t *testing.T) {
		gt.A(t, model.MatchOwnedNumbers(nil, nil, userID, prefixes)).Length(0)
	})
}

func TestHasReservedPrefix(t *testing.T) {
	prefixes := []string{"650", "415"}

	gt.True(t, model.HasReservedPrefix("+16505550100", prefixes))
	gt.True(t, model.HasReservedPrefix("6505550100", prefixes))
	gt.True(t, model.HasReservedPrefix("(415) 555-0100", prefixes))
	gt.False(t, model.HasReservedPrefix("+12125550300", prefixes))
	gt.False(t, model.HasReservedPrefix("", prefixes))
	gt.False(t, model.HasReservedPrefix("+16505550100", nil))
}
