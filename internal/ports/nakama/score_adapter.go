package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"rummy/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
)

// walletModule is the part of runtime.NakamaModule the ledger touches.
type walletModule interface {
	AccountGetId(ctx context.Context, userID string) (*api.Account, error)
	WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error)
}

// NakamaScoreAdapter keeps rummy running totals in the player's wallet, as the
// WalletKeyPoints currency. Every credited round leaves a ledger entry, so a game's
// history can be replayed from Nakama's wallet ledger.
type NakamaScoreAdapter struct {
	nk walletModule
}

func NewNakamaScoreAdapter(nk walletModule) *NakamaScoreAdapter {
	return &NakamaScoreAdapter{nk: nk}
}

// GetTotal reads a player's running total. A player who never won a round holds 0.
func (a *NakamaScoreAdapter) GetTotal(ctx context.Context, userID string) (int64, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("read account %s: %w", userID, err)
	}
	if account.Wallet == "" {
		return 0, nil
	}
	var balances map[string]int64
	if err := json.Unmarshal([]byte(account.Wallet), &balances); err != nil {
		return 0, fmt.Errorf("decode wallet of %s: %w", userID, err)
	}
	return balances[WalletKeyPoints], nil
}

// Credit writes one ledger entry per round award. Zero awards are skipped so a
// round settled against a perfect loser hand leaves no empty entry.
func (a *NakamaScoreAdapter) Credit(ctx context.Context, updates []ports.ScoreUpdate) error {
	for _, u := range updates {
		if u.Points == 0 {
			continue
		}
		award := map[string]int64{WalletKeyPoints: u.Points}
		if _, _, err := a.nk.WalletUpdate(ctx, u.UserID, award, u.Metadata, true); err != nil {
			return fmt.Errorf("credit %d points to %s: %w", u.Points, u.UserID, err)
		}
	}
	return nil
}

var _ ports.ScorePort = (*NakamaScoreAdapter)(nil)
