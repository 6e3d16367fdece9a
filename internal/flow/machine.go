package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"minedin_bot/internal/coin"
	"minedin_bot/internal/earnings"
	"minedin_bot/internal/exchanger"
	"minedin_bot/internal/locale"
	"minedin_bot/internal/pool"
)

// Event is one inbound chat event, already stripped of transport detail.
type Event struct {
	ChatID        int64
	MessageID     int
	Text          string
	CallbackData  string
	IsCallback    bool
	RepliedToText string
}

// Button is one row of a one-column inline keyboard.
type Button struct {
	Label string
	Token string
}

// Reply is the outbound action for one turn. Edit means the existing
// message is rewritten in place instead of sending a new one.
type Reply struct {
	ChatID    int64
	MessageID int
	Text      string
	Keyboard  []Button
	Edit      bool
}

// Calculator is the slice of the earnings calculator the machine needs.
type Calculator interface {
	Calculate(ctx context.Context, walletAddress string, c coin.Coin, p pool.Pool, e exchanger.Exchanger) (*earnings.MinedEarnings, error)
}

const startCommand = "/start"

// Machine drives the stateless conversation. All state arrives in the
// event itself, so one Machine serves every chat concurrently.
type Machine struct {
	calc Calculator
	msgs locale.Bundle
	log  *zap.Logger
}

// NewMachine creates a conversation machine.
func NewMachine(calc Calculator, msgs locale.Bundle, log *zap.Logger) *Machine {
	return &Machine{calc: calc, msgs: msgs, log: log}
}

// Handle processes one event and returns the reply to render, or nil
// when the event calls for no response at all.
func (m *Machine) Handle(ctx context.Context, ev Event) *Reply {
	if !ev.IsCallback {
		return m.handleText(ev)
	}
	return m.handleCallback(ctx, ev)
}

func (m *Machine) handleText(ev Event) *Reply {
	if strings.EqualFold(strings.TrimSpace(ev.Text), startCommand) {
		return &Reply{ChatID: ev.ChatID, MessageID: ev.MessageID, Text: m.msgs.Welcome}
	}
	return &Reply{
		ChatID:    ev.ChatID,
		MessageID: ev.MessageID,
		Text:      m.msgs.SelectCoin,
		Keyboard:  coinKeyboard(),
	}
}

func (m *Machine) handleCallback(ctx context.Context, ev Event) *Reply {
	if ev.CallbackData == "" {
		m.log.Debug("empty callback data", zap.Int64("chat_id", ev.ChatID))
		return nil
	}
	data, err := ParseStepToken(ev.CallbackData)
	if err != nil {
		m.log.Error("step token decode failed",
			zap.Int64("chat_id", ev.ChatID),
			zap.String("token", ev.CallbackData),
			zap.Error(err))
		return &Reply{ChatID: ev.ChatID, MessageID: ev.MessageID, Text: m.msgs.UnexpectedError, Edit: true}
	}

	reply := &Reply{ChatID: ev.ChatID, MessageID: ev.MessageID, Edit: true}
	switch data.Step {
	case StepAwaitingPool:
		reply.Text = m.msgs.SelectPool
		reply.Keyboard = poolKeyboard(data)
	case StepAwaitingExchanger:
		reply.Text = m.msgs.SelectExchanger
		reply.Keyboard = exchangerKeyboard(data)
	case StepComplete:
		reply.Text = m.resultText(ctx, data, ev.RepliedToText)
	}
	return reply
}

func (m *Machine) resultText(ctx context.Context, data StepData, walletAddress string) string {
	result, err := m.calc.Calculate(ctx, walletAddress, data.Coin, data.Pool, data.Exchanger)
	if err != nil {
		m.log.Error("earnings calculation failed",
			zap.String("coin", data.Coin.Symbol),
			zap.String("pool", data.Pool.Name),
			zap.String("exchanger", data.Exchanger.Name),
			zap.Error(err))
		return renderError(m.msgs, err)
	}

	text := fmt.Sprintf(m.msgs.MinedResult,
		data.Pool.Website,
		strings.ToUpper(data.Pool.Name),
		result.CoinBalance.StringFixed(8),
		data.Coin.Symbol,
		data.Exchanger.Website,
		strings.ToUpper(data.Exchanger.Name),
		result.UsdBalance.StringFixed(2),
		result.BuyPrice.StringFixed(2),
		result.SellPrice.StringFixed(2))
	if result.Reward != nil && result.Reward.ReportedHashrate != nil {
		text += fmt.Sprintf(m.msgs.RewardResult,
			result.Reward.PerHour.StringFixed(6),
			result.Reward.PerDay.StringFixed(6),
			result.Reward.PerWeek.StringFixed(6),
			result.Reward.PerMonth.StringFixed(6),
			result.Reward.PerYear.StringFixed(6))
	}
	return text
}

// renderError maps a failure to the pool, exchanger or generic template.
// Only the pool/exchanger templates carry detail; everything else stays
// behind the generic message.
func renderError(msgs locale.Bundle, err error) string {
	var poolErr *earnings.PoolError
	if errors.As(err, &poolErr) {
		return fmt.Sprintf(msgs.PoolError, poolErr.Err.Error())
	}
	var exchErr *earnings.ExchangerError
	if errors.As(err, &exchErr) {
		return fmt.Sprintf(msgs.ExchangerError, exchErr.Err.Error())
	}
	return msgs.UnexpectedError
}

func coinKeyboard() []Button {
	coins := coin.All()
	buttons := make([]Button, 0, len(coins))
	for _, c := range coins {
		buttons = append(buttons, Button{Label: c.Symbol, Token: c.Symbol})
	}
	return buttons
}

func poolKeyboard(data StepData) []Button {
	pools := pool.ForCoin(data.Coin)
	buttons := make([]Button, 0, len(pools))
	for _, p := range pools {
		next := StepData{Step: StepAwaitingExchanger, Coin: data.Coin, Pool: p}
		buttons = append(buttons, Button{Label: p.Name, Token: next.Token()})
	}
	return buttons
}

func exchangerKeyboard(data StepData) []Button {
	exchangers := exchanger.All()
	buttons := make([]Button, 0, len(exchangers))
	for _, e := range exchangers {
		next := StepData{Step: StepComplete, Coin: data.Coin, Pool: data.Pool, Exchanger: e}
		buttons = append(buttons, Button{Label: e.Name, Token: next.Token()})
	}
	return buttons
}
