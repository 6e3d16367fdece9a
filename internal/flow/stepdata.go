package flow

import (
	"errors"
	"fmt"
	"strings"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/exchanger"
	"minedin_bot/internal/pool"
)

// Step is how far through the coin → pool → exchanger flow a token is.
type Step int

const (
	StepAwaitingCoin Step = iota
	StepAwaitingPool
	StepAwaitingExchanger
	StepComplete
)

// ErrInvalidStepToken is returned when callback data does not decode to
// a known selection path.
var ErrInvalidStepToken = errors.New("invalid step token")

// StepData is the selection state round-tripped through callback tokens.
// The server keeps no session; everything lives in the token.
type StepData struct {
	Step      Step
	Coin      coin.Coin
	Pool      pool.Pool
	Exchanger exchanger.Exchanger
}

// ParseStepToken decodes "<coin>", "<coin>_<pool>" or
// "<coin>_<pool>_<exchanger>" into the step it represents.
func ParseStepToken(token string) (StepData, error) {
	segments := strings.Split(token, "_")
	if len(segments) < 1 || len(segments) > 3 || token == "" {
		return StepData{}, fmt.Errorf("%w: %q", ErrInvalidStepToken, token)
	}

	var data StepData
	c, ok := coin.BySymbol(segments[0])
	if !ok {
		return StepData{}, fmt.Errorf("%w: unknown coin %q", ErrInvalidStepToken, segments[0])
	}
	data.Coin = c
	data.Step = StepAwaitingPool

	if len(segments) >= 2 {
		p, ok := pool.ByName(segments[1])
		if !ok {
			return StepData{}, fmt.Errorf("%w: unknown pool %q", ErrInvalidStepToken, segments[1])
		}
		data.Pool = p
		data.Step = StepAwaitingExchanger
	}
	if len(segments) == 3 {
		e, ok := exchanger.ByName(segments[2])
		if !ok {
			return StepData{}, fmt.Errorf("%w: unknown exchanger %q", ErrInvalidStepToken, segments[2])
		}
		data.Exchanger = e
		data.Step = StepComplete
	}
	return data, nil
}

// Token encodes the selections made so far back into callback data.
func (d StepData) Token() string {
	switch d.Step {
	case StepAwaitingPool:
		return d.Coin.Symbol
	case StepAwaitingExchanger:
		return d.Coin.Symbol + "_" + d.Pool.Name
	case StepComplete:
		return d.Coin.Symbol + "_" + d.Pool.Name + "_" + d.Exchanger.Name
	default:
		return ""
	}
}
