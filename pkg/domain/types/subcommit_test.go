package types_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseSubcommitTypes(t *testing.T) {
	t.Run("empty means all", func(t *testing.T) {
		set, err := types.ParseSubcommitTypes(" ")
		gt.NoError(t, err)
		gt.V(t, set.Len()).Equal(len(types.AllSubcommitTypes()))
	})

	t.Run("case insensitive with spaces", func(t *testing.T) {
		set, err := types.ParseSubcommitTypes("feature, Bug ,,docs")
		gt.NoError(t, err)
		gt.V(t, set.Key()).Equal("BUG,DOCS,FEATURE")
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := types.ParseSubcommitTypes("feature,perf")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestSubcommitTypeSet(t *testing.T) {
	set := types.AllTypes()
	gt.False(t, set.Toggle(types.SubcommitBug))
	gt.False(t, set.Has(types.SubcommitBug))
	gt.True(t, set.Toggle(types.SubcommitBug))
	gt.True(t, set.Has(types.SubcommitBug))

	clone := set.Clone()
	clone.Remove(types.SubcommitChore)
	gt.True(t, set.Has(types.SubcommitChore))
	gt.False(t, clone.Has(types.SubcommitChore))

	a := types.NewSubcommitTypeSet(types.SubcommitDocs, types.SubcommitFeature)
	b := types.NewSubcommitTypeSet(types.SubcommitFeature, types.SubcommitDocs)
	gt.V(t, a.Key()).Equal(b.Key())
	gt.V(t, types.NewSubcommitTypeSet().Key()).Equal("")
}

func TestSubcommitTypeNormalize(t *testing.T) {
	gt.V(t, types.SubcommitMilestone.Normalize()).Equal(types.SubcommitMilestone)
	gt.V(t, types.SubcommitType("PERF").Normalize()).Equal(types.SubcommitChore)
	gt.V(t, types.SubcommitType("PERF").Label()).Equal("Chore")
	gt.V(t, types.SubcommitWarning.Label()).Equal("Warning")
}

func TestRepoIDUnmarshal(t *testing.T) {
	testCases := map[string]struct {
		input  string
		expect types.RepoID
		hasErr bool
	}{
		"number": {input: `{"repoId":42}`, expect: "42"},
		"string": {input: `{"repoId":"abc-1"}`, expect: "abc-1"},
		"null":   {input: `{"repoId":null}`, expect: ""},
		"bool":   {input: `{"repoId":true}`, hasErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var v struct {
				RepoID types.RepoID `json:"repoId"`
			}
			err := json.Unmarshal([]byte(tc.input), &v)
			if tc.hasErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.V(t, v.RepoID).Equal(tc.expect)
		})
	}

	n, ok := types.RepoID("42").Int64()
	gt.True(t, ok)
	gt.V(t, n).Equal(int64(42))
	_, ok = types.RepoID("abc").Int64()
	gt.False(t, ok)
}

func TestAccessTokenMasked(t *testing.T) {
	token := types.AccessToken("secret-token-value")
	gt.V(t, token.Raw()).Equal("secret-token-value")
	gt.False(t, strings.Contains(token.String(), "secret"))
}
