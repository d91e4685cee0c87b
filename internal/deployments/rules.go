package deployments

import (
	"strings"

	"github.com/concero/chain-registry/internal/domain"
)

const adminMarker = "ADMIN_"

// rule binds a deployment category to the env key prefix its proxy addresses are published under.
type rule struct {
	category domain.DeploymentCategory
	prefix   string
}

var rules = []rule{
	{category: domain.DeploymentCategoryRouter, prefix: "CONCERO_ROUTER_PROXY_"},
	{category: domain.DeploymentCategoryRelayerLib, prefix: "CONCERO_RELAYER_LIB_PROXY_"},
	{category: domain.DeploymentCategoryValidatorLib, prefix: "CONCERO_CRE_VALIDATOR_LIB_PROXY_"},
}

func ruleFor(category domain.DeploymentCategory) (rule, bool) {
	for _, r := range rules {
		if r.category == category {
			return r, true
		}
	}
	return rule{}, false
}

// chainToken returns the chain part of key, or false when key is not a primary proxy entry of this rule.
func (r rule) chainToken(key string) (string, bool) {
	token, ok := strings.CutPrefix(key, r.prefix)
	if !ok || token == "" {
		return "", false
	}
	if strings.HasPrefix(token, adminMarker) {
		return "", false
	}
	for _, c := range token {
		if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			return "", false
		}
	}
	return token, true
}

// NormalizeChainName turns an env token such as ARBITRUM_SEPOLIA into arbitrumSepolia.
// Names already in camel case are returned unchanged.
func NormalizeChainName(token string) string {
	if isCamelCase(token) {
		return token
	}

	parts := strings.Split(strings.ToLower(token), "_")

	var b strings.Builder
	for i, part := range parts {
		if i == 0 || part == "" {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func isCamelCase(s string) bool {
	if s == "" || strings.Contains(s, "_") {
		return false
	}
	if first := s[0]; first < 'a' || first > 'z' {
		return false
	}
	return strings.ToLower(s) != s
}
