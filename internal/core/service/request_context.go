package service

import (
	"sync"

	"github.com/99minutos/dpd-compiler/internal/core/domain"
)

const defaultInfoChannel = "clientChannel"

// Credentials is one login/password/master-FID set.
type Credentials struct {
	Username string
	Password string
	FID      string
}

// Settings is what NewRequestContext needs from the configuration source.
type Settings struct {
	Environment domain.Environment
	Production  Credentials
	Sandbox     Credentials
	// InfoChannel authenticates tracking-service calls. Defaults to "clientChannel".
	InfoChannel string
	// Policy defaults to STOP_ON_FIRST_ERROR.
	Policy domain.GenerationPolicy
	// Pickup is the optional default sender address.
	Pickup *domain.AddressDocument
}

// RequestContext holds the credentials and caller-set defaults every assembler
// reads. Reads are safe from many goroutines. SetGenerationPolicy and
// SetPickupAddress are configuration-time operations: callers must not change
// defaults while compilations that depend on them are in flight.
type RequestContext struct {
	env         domain.Environment
	creds       Credentials
	infoChannel string

	mu     sync.RWMutex
	policy domain.GenerationPolicy
	pickup *domain.AddressDocument
}

// NewRequestContext validates that the active environment has a complete
// credential set and returns the context.
func NewRequestContext(s Settings) (*RequestContext, error) {
	env := s.Environment
	if env == "" {
		env = domain.EnvProduction
	}

	var creds Credentials
	var prefix string
	switch env {
	case domain.EnvSandbox:
		creds, prefix = s.Sandbox, "sandbox"
	case domain.EnvProduction:
		creds, prefix = s.Production, "production"
	default:
		return nil, domain.NewError(domain.ErrConfiguration, "environment",
			"unknown environment %q", env)
	}

	switch {
	case creds.Username == "":
		return nil, domain.NewError(domain.ErrConfiguration, prefix+".username",
			"%s mode is active - %s username is not defined", prefix, prefix)
	case creds.Password == "":
		return nil, domain.NewError(domain.ErrConfiguration, prefix+".password",
			"%s mode is active - %s password is not defined", prefix, prefix)
	case creds.FID == "":
		return nil, domain.NewError(domain.ErrConfiguration, prefix+".fid",
			"%s mode is active - %s FID is not defined", prefix, prefix)
	}

	policy := domain.PolicyStopOnFirstError
	if s.Policy != "" {
		p, err := domain.ParseGenerationPolicy(string(s.Policy))
		if err != nil {
			return nil, domain.NewError(domain.ErrConfiguration, "generationPolicy",
				"unknown generation policy %q", s.Policy)
		}
		policy = p
	}

	channel := s.InfoChannel
	if channel == "" {
		channel = defaultInfoChannel
	}

	rc := &RequestContext{
		env:         env,
		creds:       creds,
		infoChannel: channel,
		policy:      policy,
	}
	if s.Pickup != nil && !s.Pickup.IsZero() {
		p := *s.Pickup
		rc.pickup = &p
	}
	return rc, nil
}

// Environment returns the active environment.
func (rc *RequestContext) Environment() domain.Environment {
	return rc.env
}

// Auth builds the package-service auth document.
func (rc *RequestContext) Auth() domain.AuthDocument {
	return domain.AuthDocument{
		Login:     rc.creds.Username,
		Password:  rc.creds.Password,
		MasterFID: rc.creds.FID,
	}
}

// InfoAuth builds the tracking-service auth document.
func (rc *RequestContext) InfoAuth() domain.AuthDocument {
	return domain.AuthDocument{
		Login:    rc.creds.Username,
		Password: rc.creds.Password,
		Channel:  rc.infoChannel,
	}
}

func (rc *RequestContext) GenerationPolicy() domain.GenerationPolicy {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.policy
}

func (rc *RequestContext) SetGenerationPolicy(p domain.GenerationPolicy) {
	rc.mu.Lock()
	rc.policy = p
	rc.mu.Unlock()
}

// PickupAddress returns a copy of the configured pickup address.
func (rc *RequestContext) PickupAddress() (domain.AddressDocument, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	if rc.pickup == nil {
		return domain.AddressDocument{}, false
	}
	return *rc.pickup, true
}

func (rc *RequestContext) SetPickupAddress(a domain.AddressDocument) {
	rc.mu.Lock()
	rc.pickup = &a
	rc.mu.Unlock()
}
