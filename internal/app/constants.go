package app

import "rummy/internal/domain"

// MinPlayersToStartGame defines the minimum number of seats required to deal a round.
const MinPlayersToStartGame = 2

// MaxPlayers is the most seats one deck can deal, keeping a card back for the discard pile.
const MaxPlayers = (domain.DeckSize - 1) / domain.HandSize
