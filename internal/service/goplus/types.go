package goplus

// Flag is GoPlus' string-encoded boolean: "1" true, "0" false, "" unknown.
type Flag string

func (f Flag) True() bool { return f == "1" }

type Response struct {
	Code    int                      `json:"code"`
	Message string                   `json:"message"`
	Result  map[string]TokenSecurity `json:"result"`
}

// TokenSecurity is the raw per-token scan. Percentages and taxes are
// string-encoded fractions ("0.35" = 35%).
type TokenSecurity struct {
	TokenName      string   `json:"token_name"`
	TokenSymbol    string   `json:"token_symbol"`
	IsOpenSource   Flag     `json:"is_open_source"`
	IsProxy        Flag     `json:"is_proxy"`
	IsHoneypot     Flag     `json:"is_honeypot"`
	IsMintable     Flag     `json:"is_mintable"`
	HiddenOwner    Flag     `json:"hidden_owner"`
	OwnerAddress   string   `json:"owner_address"`
	CanTakeBack    Flag     `json:"can_take_back_ownership"`
	TransferPause  Flag     `json:"transfer_pausable"`
	IsBlacklisted  Flag     `json:"is_blacklisted"`
	IsWhitelisted  Flag     `json:"is_whitelisted"`
	BuyTax         string   `json:"buy_tax"`
	SellTax        string   `json:"sell_tax"`
	HolderCount    string   `json:"holder_count"`
	TotalSupply    string   `json:"total_supply"`
	CreatorAddress string   `json:"creator_address"`
	Holders        []Holder `json:"holders"`
}

type Holder struct {
	Address    string `json:"address"`
	Tag        string `json:"tag"`
	IsContract int    `json:"is_contract"`
	Balance    string `json:"balance"`
	Percent    string `json:"percent"`
	IsLocked   int    `json:"is_locked"`
}
