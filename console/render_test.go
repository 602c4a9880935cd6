package console

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"github.com/viant/authprobe/client"
	"github.com/viant/authprobe/schema"
)

func TestRender(t *testing.T) {
	var testCases = []struct {
		name string
		view *View
	}{
		{
			name: "anonymous",
			view: &View{
				Results: map[client.Section]client.Result{
					client.SectionStatus: {Message: "Authentication status retrieved successfully."},
				},
				Forms: client.NewForms(),
			},
		},
		{
			name: "authenticated",
			view: &View{
				Snapshot: client.Snapshot{
					User:            &schema.UserInfo{ID: "u-1", Name: "Ann", Email: "a@b.com", Role: schema.RoleStudent},
					IsAuthenticated: true,
				},
				Results: map[client.Section]client.Result{
					client.SectionLogin:  {Message: "Login successful! The session cookie has been set."},
					client.SectionStatus: {Message: "Authentication status retrieved successfully."},
				},
				Forms: client.NewForms(),
			},
		},
		{
			name: "register_rejected",
			view: &View{
				Results: map[client.Section]client.Result{
					client.SectionRegister: {Message: "Error: email taken", IsError: true},
				},
				Forms: client.Forms{
					Register: client.RegisterForm{Email: "a@b.com", Name: "Ann", Password: "x", Role: "PROFESOR"},
				},
			},
		},
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, Render(buf, testCase.view))
			g.Assert(t, testCase.name, buf.Bytes())
		})
	}
}
