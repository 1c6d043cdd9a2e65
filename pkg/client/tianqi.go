package client

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// TianqiClient fetches the v9 forecast payload from the tianqiapi
// endpoint. Without a city code the upstream picks the city by caller IP,
// which serves the initial request before the user searches.
type TianqiClient struct {
	*Client
	baseURL   string
	appID     string
	appSecret string
}

func NewTianqiClient(baseURL, appID, appSecret string, config Config, logger *zap.Logger) *TianqiClient {
	return &TianqiClient{
		Client:    New("tianqiapi", config, logger),
		baseURL:   baseURL,
		appID:     appID,
		appSecret: appSecret,
	}
}

// ForecastURL builds the request URL. cityCode is appended only when a
// city resolution succeeded.
func (c *TianqiClient) ForecastURL(cityCode string) string {
	url := fmt.Sprintf("%s?unescape=1&version=v9&appid=%s&appsecret=%s",
		c.baseURL, c.appID, c.appSecret)
	if cityCode != "" {
		url += "&cityid=" + cityCode
	}
	return url
}

// FetchForecast issues one GET and returns the raw JSON body.
func (c *TianqiClient) FetchForecast(ctx context.Context, cityCode string) ([]byte, error) {
	body, err := c.Get(ctx, c.ForecastURL(cityCode))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	return body, nil
}
