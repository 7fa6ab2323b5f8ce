package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n[{\"Company\":\"Acme\"}]\n```", `[{"Company":"Acme"}]`},
		{"bare fence", "```\n[]\n```", "[]"},
		{"no fence", `[{"Company":"Acme"}]`, `[{"Company":"Acme"}]`},
		{"surrounding whitespace", "  \n```json\n[]\n```\n  ", "[]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFences(tc.in))
		})
	}
}

func TestDecodeExperienceListBareArray(t *testing.T) {
	raw := []byte("```json\n[{\"Company\": \"Acme Corp\", \"Role Held at the Company\": \"Engineer\"}]\n```")

	list := DecodeExperienceList(raw, nil)

	require.Len(t, list, 1)
	assert.Equal(t, "Acme Corp", list[0].Company)
	assert.Equal(t, "Engineer", list[0].Role)
}

func TestDecodeExperienceListWrapperObject(t *testing.T) {
	raw := []byte(`{"job_experiences": [{"Company": "Acme", "Role Held at the Company": "Engineer"}]}`)

	list := DecodeExperienceList(raw, nil)

	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Company)
}

func TestDecodeExperienceListUnreadable(t *testing.T) {
	assert.Empty(t, DecodeExperienceList([]byte("I could not find any experience section."), nil))
	assert.Empty(t, DecodeExperienceList([]byte(`{"something": "else"}`), nil))
	assert.Empty(t, DecodeExperienceList(nil, nil))
}

func TestNormalizeExperiences(t *testing.T) {
	in := []JobExperience{
		{Company: "  Acme  ", Role: " Engineer ", EndDate: "present"},
		{Company: "", Role: ""},
		{Company: "Globex", Role: "Manager", EndDate: "Dec 2020"},
	}

	out := NormalizeExperiences(in, nil)

	require.Len(t, out, 2)
	assert.Equal(t, "Acme", out[0].Company)
	assert.Equal(t, "Present", out[0].EndDate)
	assert.Equal(t, "Dec 2020", out[1].EndDate)
}

func TestFilterValidExperiencesDropsIncomplete(t *testing.T) {
	schema := BuildExperienceJSONSchema()
	in := []JobExperience{
		{Company: "Acme", Role: "Engineer", StartDate: "Jan 2019", EndDate: "Present"},
		{Company: "Globex"}, // no role
		{Role: "Consultant"},
	}

	valid, dropped := FilterValidExperiences(schema, in)

	require.Len(t, valid, 1)
	assert.Equal(t, "Acme", valid[0].Company)
	assert.Equal(t, []int{1, 2}, dropped)
}
