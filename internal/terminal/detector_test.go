package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCIEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    bool
	}{
		{name: "no CI variables", envVars: map[string]string{}, want: false},
		{name: "CI=true", envVars: map[string]string{"CI": "true"}, want: true},
		{name: "CI=1", envVars: map[string]string{"CI": "1"}, want: true},
		{name: "CI=false", envVars: map[string]string{"CI": "false"}, want: false},
		{name: "CI=0", envVars: map[string]string{"CI": "0"}, want: false},
		{name: "GITHUB_ACTIONS", envVars: map[string]string{"GITHUB_ACTIONS": "true"}, want: true},
		{name: "JENKINS_URL", envVars: map[string]string{"JENKINS_URL": "http://jenkins.example.com"}, want: true},
		{name: "TF_BUILD", envVars: map[string]string{"TF_BUILD": "True"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCleanEnv(t, tt.envVars)
			assert.Equal(t, tt.want, IsCIEnvironment())
		})
	}
}
