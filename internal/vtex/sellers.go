package vtex

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/vtexops/vtex-exporter-go/internal/export"
)

const (
	sellerListPath   = "/api/catalog_system/pvt/seller/list"
	sellerDetailPath = "/api/seller-register/pvt/sellers"
	sellerPageSize   = 100
)

// The Catalog API returns PascalCase SellerId; the Seller Register API
// returns camelCase id or sellerId. Resolution tries them in this order.
var sellerIDKeys = []string{"SellerId", "id", "sellerId"}

// SellerColumns mirrors the Seller Register API field set. Catalog API
// responses are renamed into it; anything the account returns beyond
// these rides along as overflow columns.
var SellerColumns = []string{
	"id",
	"name",
	"email",
	"description",
	"exchangeReturnPolicy",
	"deliveryPolicy",
	"useHybridPaymentOptions",
	"userName",
	"password",
	"SonarConfiguration",
	"taxCode",
	"isActive",
	"fulfillmentEndpoint",
	"catalogSystemEndpoint",
	"allowHybridPayments",
	"sellerType",
	"availableSalesChannels",
	"trustPolicy",
	"channel",
	"sellerId",
	"CSCIdentification",
}

// SellerFieldRenames maps the Catalog API's PascalCase keys onto the
// Register API's camelCase schema.
var SellerFieldRenames = map[string]string{
	"SellerId":                "id",
	"Name":                    "name",
	"Email":                   "email",
	"Description":             "description",
	"ExchangeReturnPolicy":    "exchangeReturnPolicy",
	"DeliveryPolicy":          "deliveryPolicy",
	"UseHybridPaymentOptions": "useHybridPaymentOptions",
	"UserName":                "userName",
	"Password":                "password",
	"TaxCode":                 "taxCode",
	"IsActive":                "isActive",
	"FulfillmentEndpoint":     "fulfillmentEndpoint",
	"CatalogSystemEndpoint":   "catalogSystemEndpoint",
}

// ListSellers pages through the marketplace seller list, deduplicating
// by resolved seller id. The pull stops on an empty page, once the total
// the API declared has been collected, or when a page yields zero new
// sellers (the endpoint keeps returning already-seen sellers past the
// true end). A transport failure ends the pull; whatever was collected
// so far is returned alongside the error so partial results still get
// exported.
func (c *Client) ListSellers(ctx context.Context) ([]export.Entity, error) {
	dedup := export.NewDeduplicator(c.log, sellerIDKeys...)
	var sellers []export.Entity
	var total int64 = -1

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("pagesize", strconv.Itoa(sellerPageSize))

		body, err := c.getJSON(ctx, sellerListPath, params)
		if err != nil {
			c.log.Error("seller page fetch failed, keeping partial results",
				zap.Int("page", page), zap.Error(err))
			return sellers, err
		}

		root := gjson.ParseBytes(body)
		items := root.Get("items")
		if root.IsArray() {
			// Some accounts return a bare array with no envelope.
			items = root
		}
		if total < 0 {
			if t := root.Get("paging.total"); t.Exists() {
				total = t.Int()
				c.log.Info("seller list total declared", zap.Int64("total", total))
			}
		}

		returned, fresh := 0, 0
		items.ForEach(func(_, item gjson.Result) bool {
			returned++
			e, ok := export.EntityOf(item)
			if !ok {
				return true
			}
			if dedup.Accept(e) {
				sellers = append(sellers, e)
				fresh++
			}
			return true
		})

		c.log.Info("seller page collected",
			zap.Int("page", page),
			zap.Int("returned", returned),
			zap.Int("new", fresh),
			zap.Int("accumulated", len(sellers)),
			zap.Int64("declared_total", total))

		if returned == 0 || fresh == 0 {
			break
		}
		if total >= 0 && int64(len(sellers)) >= total {
			break
		}
		c.pause()
	}

	if n := dedup.Skipped(); n > 0 {
		c.log.Warn("sellers dropped for lacking an identifier", zap.Int("count", n))
	}
	return sellers, nil
}

// GetSellerDetail fetches the richer Seller Register record for one
// seller, retrying per the client's policy.
func (c *Client) GetSellerDetail(ctx context.Context, sellerID string) (export.Entity, error) {
	var detail export.Entity
	err := c.retry.Do(func() error {
		body, err := c.getJSON(ctx, sellerDetailPath+"/"+url.PathEscape(sellerID), nil)
		if err != nil {
			return err
		}
		e, ok := export.ParseEntity(string(body))
		if !ok {
			return fmt.Errorf("seller %s: detail response is not a JSON object", sellerID)
		}
		detail = e
		return nil
	})
	return detail, err
}

// EnrichSellers swaps each seller summary for its Seller Register record
// when one can be fetched; the summary is kept unmodified otherwise.
func (c *Client) EnrichSellers(ctx context.Context, sellers []export.Entity) []export.Entity {
	out := make([]export.Entity, 0, len(sellers))
	for i, summary := range sellers {
		id := summary.Identifier("id", "sellerId", "SellerId")
		if id == "" {
			out = append(out, summary)
			continue
		}
		c.log.Info("fetching seller details",
			zap.Int("n", i+1), zap.Int("of", len(sellers)), zap.String("seller", id))
		detail, err := c.GetSellerDetail(ctx, id)
		if err != nil {
			c.log.Warn("seller detail unavailable, keeping summary",
				zap.String("seller", id), zap.Error(err))
			out = append(out, summary)
			continue
		}
		out = append(out, detail)
	}
	return out
}
