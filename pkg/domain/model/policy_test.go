package model_test

import (
	"testing"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestPolicyValidate(t *testing.T) {
	valid := model.Policy{
		WorkspaceDomain: "tjr-trades.com",
		NumberPrefixes:  []string{"650"},
	}

	t.Run("valid policy", func(t *testing.T) {
		p := valid
		gt.NoError(t, p.Validate())
	})

	t.Run("missing domain", func(t *testing.T) {
		p := valid
		p.WorkspaceDomain = ""
		gt.Error(t, p.Validate())
	})

	t.Run("domain must not contain @", func(t *testing.T) {
		p := valid
		p.WorkspaceDomain = "@tjr-trades.com"
		gt.Error(t, p.Validate())
	})

	t.Run("prefixes are required and numeric", func(t *testing.T) {
		p := valid
		p.NumberPrefixes = nil
		gt.Error(t, p.Validate())

		p.NumberPrefixes = []string{"65a"}
		gt.Error(t, p.Validate())
	})
}

func TestPolicyIsStaffEmail(t *testing.T) {
	p := model.Policy{WorkspaceDomain: "tjr-trades.com", NumberPrefixes: []string{"650"}}

	gt.True(t, p.IsStaffEmail("jane-d@tjr-trades.com"))
	gt.True(t, p.IsStaffEmail("Jane-D@TJR-Trades.com"))
	gt.False(t, p.IsStaffEmail("jane@gmail.com"))
	gt.False(t, p.IsStaffEmail("jane@nottjr-trades.com.evil.example"))
	gt.False(t, p.IsStaffEmail(""))
}

func TestPolicyEffectiveSearchLimit(t *testing.T) {
	p := model.Policy{}
	gt.Equal(t, model.DefaultSearchLimit, p.EffectiveSearchLimit())

	p.SearchLimit = 10
	gt.Equal(t, 10, p.EffectiveSearchLimit())
}
