package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/recruiting-api/internal/api/metrics"
	"github.com/talenthub/recruiting-api/internal/core/domain"
	"github.com/talenthub/recruiting-api/internal/pkg/token"
)

// Decision is the terminal state of the authorization gate for one request.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionDenyUnauthenticated
	DecisionDenyForbidden
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionDenyUnauthenticated:
		return "deny_unauthenticated"
	default:
		return "deny_forbidden"
	}
}

// Rule maps a path prefix to an access requirement. Public rules need no
// token; otherwise Role names the single role allowed under the prefix.
// Exact restricts the rule to the literal path, used for the root page.
type Rule struct {
	Prefix string
	Exact  bool
	Public bool
	Role   domain.Role
}

// Policy is an ordered, first-match-wins rule table compiled at startup and
// immutable afterwards, so it is safe to evaluate concurrently without locks.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: append([]Rule(nil), rules...)}
}

// DefaultPolicy returns the platform's route scope table: public entry
// surfaces and the auth API, one role-scoped namespace per role, and
// operational endpoints.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Prefix: "/", Exact: true, Public: true},
		{Prefix: "/login", Public: true},
		{Prefix: "/register", Public: true},
		{Prefix: "/api/auth", Public: true},
		{Prefix: "/health", Public: true},
		{Prefix: "/metrics", Public: true},
		{Prefix: "/swagger", Public: true},
		{Prefix: "/hr", Role: domain.RoleHR},
		{Prefix: "/api/hr", Role: domain.RoleHR},
		{Prefix: "/candidate", Role: domain.RoleCandidate},
		{Prefix: "/api/candidate", Role: domain.RoleCandidate},
		{Prefix: "/admin", Role: domain.RoleAdmin},
		{Prefix: "/api/admin", Role: domain.RoleAdmin},
	})
}

// Decide classifies path against the rule table. It is a pure function of
// (path, claims): no I/O, no side effects, same decision for the same inputs.
// A nil claims value means the request carried no valid, unexpired token.
//
// Paths matching no rule are allowed for any authenticated caller. That
// default-allow fallthrough is a deliberate, preserved policy: deployments
// wanting default-deny append a catch-all rule.
func (p *Policy) Decide(path string, claims *token.Claims) Decision {
	for _, rule := range p.rules {
		if rule.Exact {
			if path != rule.Prefix {
				continue
			}
		} else if !strings.HasPrefix(path, rule.Prefix) {
			continue
		}

		if rule.Public {
			return DecisionAllow
		}
		if claims == nil {
			return DecisionDenyUnauthenticated
		}
		if claims.Role != string(rule.Role) {
			return DecisionDenyForbidden
		}
		return DecisionAllow
	}

	if claims == nil {
		return DecisionDenyUnauthenticated
	}
	return DecisionAllow
}

// RouteScope is the authorization gate: it verifies the bearer token once,
// runs the policy decision, and translates a deny into a 401/403 for API
// paths or a redirect to the login surface for page paths. Valid claims are
// injected into the request context on allow.
func RouteScope(policy *Policy, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var claims *token.Claims
			if raw, ok := bearerToken(c); ok {
				// Invalid or expired tokens are treated as absent; the
				// decision below reports unauthenticated, not forbidden.
				claims, _ = token.Parse(raw, jwtSecret)
			}

			path := c.Request().URL.Path
			decision := policy.Decide(path, claims)
			metrics.AuthzDecisionsTotal.WithLabelValues(decision.String()).Inc()

			switch decision {
			case DecisionAllow:
				if claims != nil {
					setClaims(c, claims)
				}
				return next(c)
			case DecisionDenyUnauthenticated:
				if isAPIPath(path) {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return c.Redirect(http.StatusFound, "/login")
			default:
				if isAPIPath(path) {
					return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
				}
				return c.Redirect(http.StatusFound, "/login")
			}
		}
	}
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
