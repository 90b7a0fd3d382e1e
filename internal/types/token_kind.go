package types

import "fmt"

type TokenKind string

const (
	KindToken        TokenKind = "Token"
	KindPieSmartPool TokenKind = "PieSmartPool"
	KindPieVault     TokenKind = "PieVault"
	KindYieldVault   TokenKind = "YieldVault"
)

func (k TokenKind) String() string {
	return string(k)
}

// IsPie reports whether the kind is backed by a pie subgraph.
func (k TokenKind) IsPie() bool {
	return k == KindPieSmartPool || k == KindPieVault
}

func TokenKindFromString(s string) (TokenKind, error) {
	switch s {
	case "Token":
		return KindToken, nil
	case "PieSmartPool":
		return KindPieSmartPool, nil
	case "PieVault":
		return KindPieVault, nil
	case "YieldVault":
		return KindYieldVault, nil
	default:
		return "", fmt.Errorf("invalid token kind: %s", s)
	}
}
