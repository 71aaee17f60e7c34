package types

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

type SubcommitType string

const (
	SubcommitFeature   SubcommitType = "FEATURE"
	SubcommitBug       SubcommitType = "BUG"
	SubcommitRefactor  SubcommitType = "REFACTOR"
	SubcommitDocs      SubcommitType = "DOCS"
	SubcommitChore     SubcommitType = "CHORE"
	SubcommitMilestone SubcommitType = "MILESTONE"
	SubcommitWarning   SubcommitType = "WARNING"
)

var subcommitTypeLabels = map[SubcommitType]string{
	SubcommitFeature:   "Feature",
	SubcommitBug:       "Bug",
	SubcommitRefactor:  "Refactor",
	SubcommitDocs:      "Docs",
	SubcommitChore:     "Chore",
	SubcommitMilestone: "Milestone",
	SubcommitWarning:   "Warning",
}

// AllSubcommitTypes returns every type in filter bar order.
func AllSubcommitTypes() []SubcommitType {
	return []SubcommitType{
		SubcommitFeature,
		SubcommitBug,
		SubcommitRefactor,
		SubcommitDocs,
		SubcommitChore,
		SubcommitMilestone,
		SubcommitWarning,
	}
}

func (x SubcommitType) Valid() bool {
	_, ok := subcommitTypeLabels[x]
	return ok
}

// Normalize maps unrecognized types to CHORE.
func (x SubcommitType) Normalize() SubcommitType {
	if x.Valid() {
		return x
	}
	return SubcommitChore
}

func (x SubcommitType) Label() string {
	return subcommitTypeLabels[x.Normalize()]
}

// SubcommitTypeSet is a set of active subcommit types. The zero value is an empty set.
type SubcommitTypeSet map[SubcommitType]struct{}

func NewSubcommitTypeSet(types ...SubcommitType) SubcommitTypeSet {
	set := make(SubcommitTypeSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// AllTypes returns a set with every subcommit type active, the default filter state.
func AllTypes() SubcommitTypeSet {
	return NewSubcommitTypeSet(AllSubcommitTypes()...)
}

func (x SubcommitTypeSet) Has(t SubcommitType) bool {
	_, ok := x[t]
	return ok
}

func (x SubcommitTypeSet) Add(t SubcommitType) {
	x[t] = struct{}{}
}

func (x SubcommitTypeSet) Remove(t SubcommitType) {
	delete(x, t)
}

// Toggle flips membership of t and reports whether t is active afterwards.
func (x SubcommitTypeSet) Toggle(t SubcommitType) bool {
	if x.Has(t) {
		x.Remove(t)
		return false
	}
	x.Add(t)
	return true
}

func (x SubcommitTypeSet) Len() int {
	return len(x)
}

// Clone returns an independent copy of the set.
func (x SubcommitTypeSet) Clone() SubcommitTypeSet {
	set := make(SubcommitTypeSet, len(x))
	for t := range x {
		set[t] = struct{}{}
	}
	return set
}

// Key returns a canonical representation usable as a map key.
func (x SubcommitTypeSet) Key() string {
	keys := make([]string, 0, len(x))
	for t := range x {
		keys = append(keys, string(t))
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

// ParseSubcommitTypes parses a comma separated, case-insensitive list of
// types. An empty input yields every type.
func ParseSubcommitTypes(v string) (SubcommitTypeSet, error) {
	if strings.TrimSpace(v) == "" {
		return AllTypes(), nil
	}

	set := NewSubcommitTypeSet()
	for _, part := range strings.Split(v, ",") {
		t := SubcommitType(strings.ToUpper(strings.TrimSpace(part)))
		if t == "" {
			continue
		}
		if !t.Valid() {
			return nil, goerr.Wrap(ErrInvalidOption, "unknown subcommit type", goerr.V("type", part))
		}
		set.Add(t)
	}

	return set, nil
}

// RepoID identifies an analysed repository. The backend sends it either as a
// JSON number or as a JSON string.
type RepoID string

func (x RepoID) String() string { return string(x) }

func (x *RepoID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*x = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*x = RepoID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return goerr.Wrap(err, "repoId must be a string or a number", goerr.V("data", string(data)))
	}
	*x = RepoID(n.String())
	return nil
}

// Int64 returns the numeric form of the id when it has one.
func (x RepoID) Int64() (int64, bool) {
	n, err := strconv.ParseInt(string(x), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
