package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"rummy/internal/app"
	"rummy/internal/bot"
	"rummy/internal/config"
	"rummy/internal/domain"
	"rummy/internal/meld"
	"rummy/internal/ports"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/tidwall/gjson"
)

var (
	errBadPayload = errors.New("malformed payload")
	errStockEmpty = errors.New("stock is empty")
)

// Module state set by InitModule.
var (
	service      = app.NewService(nil)
	defaultLevel = bot.LevelSmart
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcIDEvaluateHand:  RpcEvaluateHand,
		RpcIDCardImproves:  RpcCardImproves,
		RpcIDHandValue:     RpcHandValue,
		RpcIDChooseDiscard: RpcChooseDiscard,
		RpcIDBotTurn:       RpcBotTurn,
		RpcIDDeal:          RpcDeal,
		RpcIDSettleRound:   RpcSettleRound,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return fmt.Errorf("register rpc %s: %w", id, err)
		}
	}
	return nil
}

// RpcEvaluateHand returns the optimal partition of a 10-card hand.
//
// Payload: {"hand":[card x10]}
// Returns: {"is_complete","melds","leftover_cards","leftover_points"}
func RpcEvaluateHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	logger = logger.WithField("rpc", RpcIDEvaluateHand)
	p, err := parsePayload(payload)
	if err != nil {
		return "", rpcError(logger, err)
	}
	hand, err := cardsFromJSON("hand", p.Get("hand"))
	if err != nil {
		return "", rpcError(logger, fmt.Errorf("%w: %v", errBadPayload, err))
	}
	res, err := meld.EvaluateHand(hand)
	if err != nil {
		return "", rpcError(logger, err)
	}
	return respond(logger, res)
}

// RpcCardImproves reports whether card would raise the maximal meld count of hand.
//
// Payload: {"hand":[card x10],"card":card}
// Returns: {"improves":bool}
func RpcCardImproves(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	logger = logger.WithField("rpc", RpcIDCardImproves)
	p, err := parsePayload(payload)
	if err != nil {
		return "", rpcError(logger, err)
	}
	hand, err := cardsFromJSON("hand", p.Get("hand"))
	if err != nil {
		return "", rpcError(logger, fmt.Errorf("%w: %v", errBadPayload, err))
	}
	card, err := singleCard(p, "card")
	if err != nil {
		return "", rpcError(logger, err)
	}
	if err := domain.ValidateHand(hand); err != nil {
		return "", rpcError(logger, err)
	}
	if err := domain.ValidateCards(domain.WithCard(hand, card)); err != nil {
		return "", rpcError(logger, err)
	}
	return respond(logger, map[string]bool{"improves": meld.CardImprovesCoverage(hand, card)})
}

// RpcHandValue scores a set of cards, typically the loser's leftover.
//
// Payload: {"cards":[card...]}
// Returns: {"points":int}
func RpcHandValue(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	logger = logger.WithField("rpc", RpcIDHandValue)
	p, err := parsePayload(payload)
	if err != nil {
		return "", rpcError(logger, err)
	}
	cards, err := cardsFromJSON("cards", p.Get("cards"))
	if err != nil {
		return "", rpcError(logger, fmt.Errorf("%w: %v", errBadPayload, err))
	}
	if err := domain.ValidateCards(cards); err != nil {
		return "", rpcError(logger, err)
	}
	return respond(logger, map[string]int{"points": domain.HandValue(cards)})
}

// RpcChooseDiscard asks a bot which card to throw from an 11-card hand.
//
// Payload: {"hand":[card x11],"level":"basic"|"smart"}
// Returns: {"index":int,"card":card}
func RpcChooseDiscard(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	logger = logger.WithField("rpc", RpcIDChooseDiscard)
	p, err := parsePayload(payload)
	if err != nil {
		return "", rpcError(logger, err)
	}
	hand, err := cardsFromJSON("hand", p.Get("hand"))
	if err != nil {
		return "", rpcError(logger, fmt.Errorf("%w: %v", errBadPayload, err))
	}
	if len(hand) != domain.HandSize+1 {
		return "", rpcError(logger, &domain.InvalidHandError{
			Reason: fmt.Sprintf("hand has %d cards, want %d", len(hand), domain.HandSize+1),
			Index:  -1,
		})
	}
	if err := domain.ValidateCards(hand); err != nil {
		return "", rpcError(logger, err)
	}
	brain, err := brainFor(p)
	if err != nil {
		return "", rpcError(logger, err)
	}
	i := brain.ChooseDiscard(hand)
	return respond(logger, struct {
		Index int         `json:"index"`
		Card  domain.Card `json:"card"`
	}{Index: i, Card: hand[i]})
}

// RpcBotTurn plays one bot turn: take the face-up discard or draw the first stock card,
// then discard.
//
// Payload: {"hand":[card x10],"top":card,"stock":[card...],"level":"basic"|"smart"}
// Returns: {"took_discard","drawn","discarded","hand"}
func RpcBotTurn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	logger = logger.WithField("rpc", RpcIDBotTurn)
	p, err := parsePayload(payload)
	if err != nil {
		return "", rpcError(logger, err)
	}
	hand, err := cardsFromJSON("hand", p.Get("hand"))
	if err != nil {
		return "", rpcError(logger, fmt.Errorf("%w: %v", errBadPayload, err))
	}
	top, err := singleCard(p, "top")
	if err != nil {
		return "", rpcError(logger, err)
	}
	var stock []domain.Card
	if s := p.Get("stock"); s.Exists() {
		if stock, err = cardsFromJSON("stock", s); err != nil {
			return "", rpcError(logger, fmt.Errorf("%w: %v", errBadPayload, err))
		}
	}
	if err := domain.ValidateHand(hand); err != nil {
		return "", rpcError(logger, err)
	}
	if err := domain.ValidateCards(append(domain.WithCard(hand, top), stock...)); err != nil {
		return "", rpcError(logger, err)
	}

	level, err := levelFor(p)
	if err != nil {
		return "", rpcError(logger, err)
	}
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	agent, err := bot.NewAgent(userID, "", level)
	if err != nil {
		return "", rpcError(logger, err)
	}
	turn, err := agent.Play(hand, top, func() (domain.Card, error) {
		if len(stock) == 0 {
			return domain.Card{}, errStockEmpty
		}
		return stock[0], nil
	})
	if err != nil {
		return "", rpcError(logger, err)
	}
	logger.Debug("bot turn at level %s: took_discard=%v discarded=%s", level, turn.TookDiscard, turn.Discarded)
	return respond(logger, turn)
}

// RpcDeal shuffles and deals a new round.
//
// Payload: {"players":[user id...]}
// Returns: {"round_id","order","hands","stock","discard"}
func RpcDeal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	logger = logger.WithField("rpc", RpcIDDeal)
	p, err := parsePayload(payload)
	if err != nil {
		return "", rpcError(logger, err)
	}
	var players []string
	for _, v := range p.Get("players").Array() {
		players = append(players, v.String())
	}
	d, events, err := service.Deal(players)
	if err != nil {
		return "", rpcError(logger, err)
	}
	logger.Info("Dealt round %s to %d players (%d events)", d.RoundID, len(d.Order), len(events))
	return respond(logger, d)
}

type settleResponse struct {
	app.Settlement
	Totals  [2]int          `json:"totals"`
	GameWon bool            `json:"game_won"`
	Events  []app.EventKind `json:"events"`
}

// RpcSettleRound scores a finished round and credits the winner.
//
// Payload: {"winner":[card x10],"loser":[card x10],"totals":[int,int],"winner_id","loser_id"}
// When totals are omitted and winner_id is set, the winner's total is read from the wallet
// ledger. The award is credited to the ledger whenever winner_id is set.
// Returns: the settlement with updated totals.
func RpcSettleRound(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	logger = logger.WithField("rpc", RpcIDSettleRound)
	p, err := parsePayload(payload)
	if err != nil {
		return "", rpcError(logger, err)
	}
	winnerHand, err := cardsFromJSON("winner", p.Get("winner"))
	if err != nil {
		return "", rpcError(logger, fmt.Errorf("%w: %v", errBadPayload, err))
	}
	loserHand, err := cardsFromJSON("loser", p.Get("loser"))
	if err != nil {
		return "", rpcError(logger, fmt.Errorf("%w: %v", errBadPayload, err))
	}
	winnerID := p.Get("winner_id").String()
	loserID := p.Get("loser_id").String()

	var scores ports.ScorePort
	if winnerID != "" && nk != nil {
		scores = NewNakamaScoreAdapter(nk)
	}

	var totals [2]int
	if t := p.Get("totals"); t.Exists() {
		vals := t.Array()
		if !t.IsArray() || len(vals) != 2 {
			return "", rpcError(logger, fmt.Errorf("%w: totals must hold two integers", errBadPayload))
		}
		totals = [2]int{int(vals[0].Int()), int(vals[1].Int())}
	} else if scores != nil {
		total, err := scores.GetTotal(ctx, winnerID)
		if err != nil {
			return "", rpcError(logger, err)
		}
		totals[0] = int(total)
	}

	st, err := service.SettleRound(
		uuid.Nil,
		app.Seat{UserID: winnerID, Hand: winnerHand},
		app.Seat{UserID: loserID, Hand: loserHand},
	)
	if err != nil {
		return "", rpcError(logger, err)
	}

	card := &app.ScoreCard{Player: winnerID, Total: totals[0]}
	target := config.GetWinningScore()
	events, err := service.Record(card, st, target)
	if err != nil {
		return "", rpcError(logger, err)
	}

	if scores != nil {
		update := ports.ScoreUpdate{
			UserID: winnerID,
			Points: int64(st.Points),
			Metadata: map[string]interface{}{
				"round_id": st.RoundID.String(),
				"loser_id": loserID,
			},
		}
		if err := scores.Credit(ctx, []ports.ScoreUpdate{update}); err != nil {
			return "", rpcError(logger, err)
		}
	}

	resp := settleResponse{
		Settlement: st,
		Totals:     [2]int{card.Total, totals[1]},
		GameWon:    card.HasWon(target),
	}
	for _, ev := range events {
		resp.Events = append(resp.Events, ev.Kind)
	}
	logger.Info("Round %s settled: %s +%d (total %d, game won %v)", st.RoundID, winnerID, st.Points, card.Total, resp.GameWon)
	return respond(logger, resp)
}

func parsePayload(payload string) (gjson.Result, error) {
	if payload == "" || !gjson.Valid(payload) {
		return gjson.Result{}, fmt.Errorf("%w: not valid JSON", errBadPayload)
	}
	p := gjson.Parse(payload)
	if !p.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected an object", errBadPayload)
	}
	return p, nil
}

func singleCard(p gjson.Result, field string) (domain.Card, error) {
	v := p.Get(field)
	if !v.Exists() {
		return domain.Card{}, fmt.Errorf("%w: missing %q", errBadPayload, field)
	}
	c, err := cardFromJSON(v)
	if err != nil {
		return domain.Card{}, fmt.Errorf("%w: %s: %v", errBadPayload, field, err)
	}
	if err := domain.ValidateCard(c); err != nil {
		return domain.Card{}, err
	}
	return c, nil
}

func levelFor(p gjson.Result) (bot.Level, error) {
	if v := p.Get("level"); v.Exists() && v.String() != "" {
		return bot.ParseLevel(v.String())
	}
	return defaultLevel, nil
}

func brainFor(p gjson.Result) (bot.Brain, error) {
	level, err := levelFor(p)
	if err != nil {
		return nil, err
	}
	return bot.NewBrain(level)
}

func respond(logger runtime.Logger, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", rpcError(logger, fmt.Errorf("marshal response: %w", err))
	}
	return string(b), nil
}

// rpcError maps caller mistakes to INVALID_ARGUMENT and everything else to INTERNAL.
func rpcError(logger runtime.Logger, err error) error {
	switch {
	case errors.Is(err, errBadPayload),
		errors.Is(err, errStockEmpty),
		errors.Is(err, domain.ErrInvalidHand),
		errors.Is(err, app.ErrNotRummy),
		errors.Is(err, app.ErrGameOver),
		errors.Is(err, app.ErrTooFewPlayers),
		errors.Is(err, app.ErrTooManyPlayers),
		errors.Is(err, app.ErrInvalidPlayer),
		errors.Is(err, bot.ErrUnknownLevel):
		logger.Warn("rejected: %v", err)
		return runtime.NewError(err.Error(), codeInvalidArgument)
	default:
		logger.Error("failed: %v", err)
		return runtime.NewError(err.Error(), codeInternal)
	}
}
