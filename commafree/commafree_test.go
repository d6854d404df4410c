package commafree_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallberg/commafree/brute"
	"github.com/wallberg/commafree/commafree"
)

// codeKey returns a canonical, order-independent string key for a code so
// two codes can be compared as sets of words.
func codeKey(c commafree.Code) string {
	words := make([]string, len(c))
	for i, w := range c {
		words[i] = digits(w)
	}
	sort.Strings(words)
	key := ""
	for _, w := range words {
		key += w + ","
	}
	return key
}

func digits(w commafree.Word) string {
	b := make([]byte, 4)
	for i, d := range w {
		b[i] = byte('0' + d)
	}
	return string(b)
}

func collect(t *testing.T, m, g int) []commafree.Code {
	t.Helper()
	s, err := commafree.NewSearch(m, g)
	require.NoError(t, err)

	var codes []commafree.Code
	for {
		code, ok, err := s.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		codes = append(codes, code)
	}
	return codes
}

func TestSearch_InvalidParameters(t *testing.T) {
	_, err := commafree.NewSearch(1, 1)
	assert.ErrorIs(t, err, commafree.ErrInvalidAlphabet)

	_, err = commafree.NewSearch(8, 1)
	assert.ErrorIs(t, err, commafree.ErrInvalidAlphabet)

	_, err = commafree.NewSearch(2, 100)
	assert.ErrorIs(t, err, commafree.ErrInvalidGoal)

	_, err = commafree.NewSearch(2, -1)
	assert.ErrorIs(t, err, commafree.ErrInvalidGoal)
}

func TestSearch_M2G3(t *testing.T) {
	codes := collect(t, 2, 3)
	require.Len(t, codes, 14)

	want := []string{
		"0001,0011,0111,", "0001,0110,0111,", "0001,0110,1110,",
		"0001,0111,1001,", "0001,1001,1011,", "0001,1001,1101,",
		"0001,1001,1110,", "0001,1100,1101,", "0010,0011,1011,",
		"0010,0011,1101,", "0010,0011,1110,", "0010,0110,0111,",
		"0010,0110,1110,", "0010,1100,1101,",
	}

	got := map[string]bool{}
	for _, c := range codes {
		assert.True(t, brute.IsCommafree(c), "code %v must be commafree", c)
		got[codeKey(c)] = true
	}
	for _, k := range want {
		assert.True(t, got[k], "missing expected code %s", k)
	}
}

func TestSearch_M2G3_CompletenessAgainstBruteForce(t *testing.T) {
	searched := map[string]bool{}
	for _, c := range collect(t, 2, 3) {
		searched[codeKey(c)] = true
	}

	bruted := map[string]bool{}
	for _, words := range brute.AllCodes(2, 3) {
		bruted[codeKey(commafree.Code(words))] = true
	}

	assert.Equal(t, bruted, searched)
}

func TestSearch_M3G18(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long search in -short mode")
	}
	codes := collect(t, 3, 18)
	assert.Len(t, codes, 72)

	a := map[string]bool{
		"0001": true, "0002": true, "1001": true, "1002": true, "1102": true,
		"2001": true, "2002": true, "2011": true, "2012": true, "2102": true,
		"2112": true,
	}
	found := false
	for _, c := range codes {
		present := map[string]bool{}
		for _, w := range c {
			present[digits(w)] = true
		}
		allA := true
		for w := range a {
			if !present[w] {
				allA = false
				break
			}
		}
		if allA {
			found = true
			assert.True(t, brute.IsCommafree(c))
		}
	}
	assert.True(t, found, "expected at least one code containing the common 'a' word set")
}

func TestSearch_M4G57(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long search in -short mode")
	}
	codes := collect(t, 4, 57)
	assert.Len(t, codes, 1152)

	answer1 := map[string]bool{
		"0001": true, "0002": true, "0003": true, "0201": true, "0203": true,
		"1001": true, "1002": true, "1003": true, "1011": true, "1013": true,
		"1021": true, "1022": true, "1023": true, "1031": true, "1032": true,
		"1033": true, "1201": true, "1203": true, "1211": true, "1213": true,
		"1221": true, "1223": true, "1231": true, "1232": true, "1233": true,
		"1311": true, "1321": true, "1323": true, "1331": true, "2001": true,
		"2002": true, "2003": true, "2021": true, "2022": true, "2023": true,
		"2201": true, "2203": true, "2221": true, "2223": true, "3001": true,
		"3002": true, "3003": true, "3011": true, "3013": true, "3021": true,
		"3022": true, "3023": true, "3031": true, "3032": true, "3033": true,
		"3201": true, "3203": true, "3221": true, "3223": true, "3321": true,
		"3323": true, "3331": true,
	}
	answer2 := map[string]bool{
		"0010": true, "0020": true, "0030": true, "0110": true, "0112": true,
		"0113": true, "0120": true, "0121": true, "0122": true, "0130": true,
		"0131": true, "0132": true, "0133": true, "0210": true, "0212": true,
		"0213": true, "0220": true, "0222": true, "0230": true, "0310": true,
		"0312": true, "0313": true, "0320": true, "0322": true, "0330": true,
		"0332": true, "0333": true, "1110": true, "1112": true, "1113": true,
		"2010": true, "2030": true, "2110": true, "2112": true, "2113": true,
		"2210": true, "2212": true, "2213": true, "2230": true, "2310": true,
		"2312": true, "2313": true, "2320": true, "2322": true, "2330": true,
		"2332": true, "2333": true, "3110": true, "3112": true, "3113": true,
		"3210": true, "3212": true, "3213": true, "3230": true, "3310": true,
		"3312": true, "3313": true,
	}

	foundAnswer1, foundAnswer2 := false, false
	for _, c := range codes {
		assert.True(t, brute.IsCommafree(c), "code %v must be commafree", c)

		present := map[string]bool{}
		for _, w := range c {
			present[digits(w)] = true
		}
		if sameSet(present, answer1) {
			foundAnswer1 = true
		}
		if sameSet(present, answer2) {
			foundAnswer2 = true
		}
	}
	assert.True(t, foundAnswer1, "expected answer1 to appear among the codes")
	assert.True(t, foundAnswer2, "expected answer2 to appear among the codes")
}

func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestSearch_BoundaryGoalEqualsL(t *testing.T) {
	s, err := commafree.NewSearch(2, 3)
	require.NoError(t, err)
	code, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, code, 3)
}

func TestSearch_BoundaryGoalEqualsMinimum(t *testing.T) {
	m := 2
	l := 3 // (2^4-2^2)/4
	min := l - m*(m-1)
	_, err := commafree.NewSearch(m, min)
	require.NoError(t, err)
}

func TestSearch_ExhaustsProperly(t *testing.T) {
	s, err := commafree.NewSearch(2, 3)
	require.NoError(t, err)
	for {
		_, ok, err := s.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
	}
	// Calling Next again after exhaustion must keep reporting done.
	_, ok, err := s.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}
