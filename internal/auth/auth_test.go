package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pacedash/internal/config"
)

func registryWithTokens() *config.Registry {
	return &config.Registry{
		Pods: []config.PodConfig{
			{
				Slug:  "pod1",
				Token: "pod-secret",
				Clients: []config.ClientConfig{
					{Slug: "acme", Token: "client-secret"},
					{Slug: "tokenless"},
				},
			},
		},
	}
}

func TestValidateCeo(t *testing.T) {
	v := NewValidator(registryWithTokens(), "ceo-secret")

	res := v.ValidateCeo("ceo-secret")
	assert.True(t, res.Valid)
	assert.Equal(t, LevelCeo, res.Level)

	assert.False(t, v.ValidateCeo("wrong").Valid)
	assert.False(t, v.ValidateCeo("").Valid)
}

func TestValidateCeoUnconfigured(t *testing.T) {
	v := NewValidator(registryWithTokens(), "")
	assert.False(t, v.ValidateCeo("").Valid, "an empty configured token never matches")
	assert.False(t, v.ValidateCeo("anything").Valid)
}

func TestValidatePod(t *testing.T) {
	v := NewValidator(registryWithTokens(), "ceo-secret")

	res := v.ValidatePod("pod1", "pod-secret")
	assert.True(t, res.Valid)
	assert.Equal(t, LevelPod, res.Level)
	assert.Equal(t, "pod1", res.Pod.Slug)

	assert.False(t, v.ValidatePod("pod1", "wrong").Valid)
	assert.False(t, v.ValidatePod("missing", "pod-secret").Valid)
	assert.False(t, v.ValidatePod("pod1", "client-secret").Valid, "a client token grants nothing at pod level")
}

func TestValidateClient(t *testing.T) {
	v := NewValidator(registryWithTokens(), "ceo-secret")

	res := v.ValidateClient("acme", "client-secret")
	assert.True(t, res.Valid)
	assert.Equal(t, LevelClient, res.Level)
	assert.Equal(t, "acme", res.Client.Slug)
	assert.Equal(t, "pod1", res.Pod.Slug)

	assert.False(t, v.ValidateClient("acme", "wrong").Valid)
	assert.False(t, v.ValidateClient("missing", "client-secret").Valid)
	assert.False(t, v.ValidateClient("tokenless", "").Valid)
	assert.False(t, v.ValidateClient("tokenless", "anything").Valid)
}
