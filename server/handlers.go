package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/papertrade/papertrade"
)

type tradeRequest struct {
	Side     string `json:"side" binding:"required,tradeside"`
	Symbol   string `json:"symbol" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// accountView is the account without the password field.
type accountView struct {
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func viewOf(a papertrade.Account) accountView {
	return accountView{
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *Server) listInstruments(c *gin.Context) {
	quotes, err := s.desk.Quotes.Snapshot(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	f := papertrade.Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Gainers:  c.Query("movers") == "gainers",
		Losers:   c.Query("movers") == "losers",
	}
	if c.Query("watchlist") == "true" {
		book, err := s.desk.Store.Book()
		if err != nil {
			c.Error(err)
			return
		}
		f.Watchlist = book.Watchlist
	}
	instruments := s.desk.Universe.Select(f, quotes)

	type row struct {
		papertrade.Instrument
		Quote papertrade.Quote `json:"quote"`
	}
	rows := make([]row, 0, len(instruments))
	for _, inst := range instruments {
		rows = append(rows, row{Instrument: inst, Quote: quotes[inst.Symbol]})
	}
	c.JSON(http.StatusOK, gin.H{"instruments": rows})
}

func (s *Server) listQuotes(c *gin.Context) {
	quotes, err := s.desk.Quotes.Snapshot(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

func (s *Server) getQuote(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	inst, ok := s.desk.Universe.Get(symbol)
	if !ok {
		c.Error(papertrade.ErrUnknownSymbol)
		return
	}
	q, ok, err := s.desk.Quotes.Quote(c.Request.Context(), symbol)
	if err != nil {
		c.Error(err)
		return
	}
	if !ok {
		q = papertrade.Quote{Price: inst.BasePrice}
	}
	c.JSON(http.StatusOK, gin.H{"instrument": inst, "quote": q})
}

func (s *Server) getPortfolio(c *gin.Context) {
	v, err := s.desk.Valuation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) listTrades(c *gin.Context) {
	var side papertrade.Side
	if q := c.Query("side"); q != "" {
		var err error
		if side, err = papertrade.ParseSide(q); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	trades, err := s.desk.Store.Trades()
	if err != nil {
		c.Error(err)
		return
	}
	trades = papertrade.SelectTrades(trades, side)
	c.JSON(http.StatusOK, gin.H{"trades": papertrade.NewestFirst(trades)})
}

func (s *Server) placeTrade(c *gin.Context) {
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	side, err := papertrade.ParseSide(req.Side)
	if err != nil {
		c.Error(err)
		return
	}
	symbol := strings.ToUpper(req.Symbol)

	var rec papertrade.TradeRecord
	switch side {
	case papertrade.SideBuy:
		rec, err = s.desk.Buy(c.Request.Context(), symbol, req.Quantity)
	case papertrade.SideSell:
		rec, err = s.desk.Sell(c.Request.Context(), symbol, req.Quantity)
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) getSignal(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	sig, err := s.desk.Signal(c.Request.Context(), symbol, nil)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sig)
}

func (s *Server) watch(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	if err := s.desk.Watch(symbol); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"watching": symbol})
}

func (s *Server) unwatch(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	if err := s.desk.Unwatch(symbol); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) setTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	theme, err := papertrade.ParseTheme(req.Theme)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.desk.SetTheme(theme); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme.String()})
}

func (s *Server) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	account, err := s.desk.Signup(req.Username, req.Password, req.Email)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(account))
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	account, err := s.desk.Login(req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, viewOf(account))
}

func (s *Server) logout(c *gin.Context) {
	if err := s.desk.Logout(); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) session(c *gin.Context) {
	account, ok, err := s.desk.CurrentUser()
	if err != nil {
		c.Error(err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "account": viewOf(account)})
}
