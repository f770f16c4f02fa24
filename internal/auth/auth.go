// Package auth validates the static access tokens gating each dashboard
// level. There is no session state: a token either matches its level's
// configured value or the request is rejected.
package auth

import (
	"crypto/subtle"

	"pacedash/internal/config"
)

// Level is the aggregation level a token grants access to.
type Level string

const (
	LevelCeo    Level = "ceo"
	LevelPod    Level = "pod"
	LevelClient Level = "client"
)

// Result is the outcome of a token check. Pod and Client are set for the
// respective levels.
type Result struct {
	Valid  bool
	Level  Level
	Pod    *config.PodConfig
	Client *config.ClientConfig
}

// Validator checks request tokens against the registry and the CEO token.
type Validator struct {
	registry *config.Registry
	ceoToken string
}

func NewValidator(registry *config.Registry, ceoToken string) *Validator {
	return &Validator{registry: registry, ceoToken: ceoToken}
}

// ValidateCeo checks the company-level token.
func (v *Validator) ValidateCeo(token string) Result {
	if !tokenEqual(token, v.ceoToken) {
		return Result{}
	}
	return Result{Valid: true, Level: LevelCeo}
}

// ValidatePod checks a pod-level token against the pod with the given slug.
func (v *Validator) ValidatePod(slug, token string) Result {
	pod := v.registry.FindPod(slug)
	if pod == nil || !tokenEqual(token, pod.Token) {
		return Result{}
	}
	return Result{Valid: true, Level: LevelPod, Pod: pod}
}

// ValidateClient checks a client-level token against the client with the
// given slug.
func (v *Validator) ValidateClient(slug, token string) Result {
	pod, client := v.registry.FindClient(slug)
	if client == nil || !tokenEqual(token, client.Token) {
		return Result{}
	}
	return Result{Valid: true, Level: LevelClient, Pod: pod, Client: client}
}

// tokenEqual compares in constant time and never accepts an empty token,
// even if the configured value is itself empty.
func tokenEqual(got, want string) bool {
	if got == "" || want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
