package nakama

// RPC ids registered with Nakama.
const (
	RpcIDEvaluateHand  = "rummy_evaluate_hand"
	RpcIDCardImproves  = "rummy_card_improves"
	RpcIDHandValue     = "rummy_hand_value"
	RpcIDChooseDiscard = "rummy_choose_discard"
	RpcIDBotTurn       = "rummy_bot_turn"
	RpcIDDeal          = "rummy_deal"
	RpcIDSettleRound   = "rummy_settle_round"
)

// Runtime env keys read by InitModule.
const (
	EnvConfigPath = "rummy_config_path"
	EnvBotLevel   = "rummy_bot_level"
)

// WalletKeyPoints is the wallet currency holding a player's running rummy score.
const WalletKeyPoints = "rummy_points"

// gRPC status codes returned through runtime.NewError.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
