package papertrade

import (
	"fmt"
	"math/rand"
)

// Signal is a fabricated trade recommendation. The score is a weighted
// heuristic over recent movement, volatility and volume plus uniform
// noise; it carries no predictive validity and exists to produce varied
// advisory text.
type Signal struct {
	Symbol   string    `json:"symbol"`
	Score    float64   `json:"score"` // always in [0,100]
	Label    string    `json:"label"`
	Advice   string    `json:"advice"`
	Tone     string    `json:"tone"`
	Insights []Insight `json:"insights"`
}

// Insight is one line of signal commentary.
type Insight struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

// Signal tones, used by clients to pick a presentation style.
const (
	ToneSuccess = "success"
	ToneInfo    = "info"
	ToneWarning = "warning"
	ToneDanger  = "danger"
)

// volume tiers, in shares
const (
	volumeHigh   = 20_000_000
	volumeMedium = 10_000_000
)

// ScoreSignal scores one instrument against its current quote. Passing
// rng pins the noise draw for tests; nil uses the global source.
func ScoreSignal(inst Instrument, q Quote, rng *rand.Rand) Signal {
	change := float64(q.ChangePercent)
	volatility := change
	if volatility < 0 {
		volatility = -volatility
	}

	score := 50.0
	switch {
	case change > 0:
		score += 15 // bullish
	case change < 0:
		score -= 15 // bearish
	}
	switch {
	case volatility > 5:
		score -= 10
	case volatility < 1:
		score += 5
	}
	switch {
	case inst.Volume > volumeHigh:
		score += 10
	case inst.Volume <= volumeMedium:
		score -= 5
	}

	noise := rand.Float64
	if rng != nil {
		noise = rng.Float64
	}
	score += (noise() - 0.5) * 10
	score = min(100, max(0, score))

	sig := Signal{
		Symbol:   inst.Symbol,
		Score:    score,
		Insights: insights(inst, change, volatility),
	}
	sig.Label, sig.Advice, sig.Tone = recommendation(score)
	return sig
}

// recommendation maps a score band to its fixed label, advice and tone.
func recommendation(score float64) (label, advice, tone string) {
	switch {
	case score >= 70:
		return "Strong Buy Signal", "High probability of price increase. Consider buying.", ToneSuccess
	case score >= 55:
		return "Buy Signal", "Moderate chance of price increase. Good buying opportunity.", ToneInfo
	case score >= 45:
		return "Hold", "Market is neutral. Hold your position or wait for better entry.", ToneWarning
	case score >= 30:
		return "Sell Signal", "Moderate chance of price decrease. Consider selling.", ToneWarning
	default:
		return "Strong Sell Signal", "High probability of price decrease. Consider selling.", ToneDanger
	}
}

func insights(inst Instrument, change, volatility float64) []Insight {
	var out []Insight

	switch {
	case change > 2:
		out = append(out, Insight{fmt.Sprintf("Strong upward trend (+%.2f%% today)", change), ToneSuccess})
	case change < -2:
		out = append(out, Insight{fmt.Sprintf("Downward trend (%.2f%% today)", change), ToneDanger})
	default:
		out = append(out, Insight{"Price movement is relatively stable", ToneInfo})
	}

	switch {
	case volatility > 5:
		out = append(out, Insight{"High volatility detected - higher risk", ToneWarning})
	case volatility < 1:
		out = append(out, Insight{"Low volatility - stable price movement", ToneSuccess})
	}

	switch {
	case inst.Volume > volumeHigh:
		out = append(out, Insight{fmt.Sprintf("High trading volume (%.1fM) - strong market interest", float64(inst.Volume)/1e6), ToneInfo})
	case inst.Volume <= volumeMedium:
		out = append(out, Insight{"Lower trading volume - less market activity", ToneWarning})
	}

	if blurb, ok := categoryBlurbs[inst.Category]; ok {
		out = append(out, Insight{blurb, ToneInfo})
	} else {
		out = append(out, Insight{fmt.Sprintf("%s sector performance", inst.Category), ToneInfo})
	}
	return out
}

var categoryBlurbs = map[string]string{
	"Tech":   "Technology sector showing mixed signals",
	"Auto":   "Automotive sector experiencing moderate activity",
	"Bank":   "Banking sector remains stable",
	"Pharma": "Pharmaceutical sector showing steady growth",
	"Energy": "Energy sector volatile due to market conditions",
}
