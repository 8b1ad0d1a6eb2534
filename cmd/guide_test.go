package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# sitekit")
		env.contains(out, "## Commands")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nonexistent")
		if err == nil {
			t.Error("Guide(nonexistent) = nil, want error")
		}
		env.contains(out, "Available:")
	})

	t.Run("works with an invalid config", func(t *testing.T) {
		env := newTestEnv(t)
		env.write(map[string]string{".sitekit/config.yaml": "site: ["})

		out := env.run("guide", "check")
		env.contains(out, "sitekit check")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		topic   string
		contain string
	}{
		{"check", "sitekit check"},
		{"locale", "sitekit locale"},
		{"config", "sitekit config"},
		{"content", "sitekit content"},
		{"serve", "sitekit serve"},
	}

	env := newTestEnv(t)
	for _, tc := range tests {
		t.Run(tc.topic, func(t *testing.T) {
			out := env.run("guide", tc.topic)
			env.contains(out, tc.contain)
		})
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")

	var info struct {
		BuildTag string `json:"build_tag"`
	}
	env.runJSON(&info, "version")
	if info.BuildTag == "" {
		t.Error("version JSON has no build_tag")
	}
}
