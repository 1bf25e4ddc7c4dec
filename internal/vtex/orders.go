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
	orderListPath = "/api/oms/pvt/orders"
	orderPageSize = 50

	// OrderWindowDays is how far back the creation-date window reaches.
	OrderWindowDays = 4
)

// OrderItemColumns is the fixed schema of the order line item export.
var OrderItemColumns = []string{
	"creationDate",
	"orderId",
	"additionalInfo_categories",
	"name",
	"price",
	"listPrice",
	"quantity",
	"productId",
	"seller",
	"data_extracao",
}

// OrderColumns is the canonical column prefix for the order-level
// export; fields the OMS returns beyond these become overflow columns.
var OrderColumns = []string{
	"orderId",
	"sequence",
	"creationDate",
	"clientName",
	"totalValue",
	"paymentNames",
	"status",
	"statusDescription",
	"salesChannel",
	"origin",
}

// ListOrders pages the OMS list endpoint for orders created inside the
// window, deduplicating by orderId. Same stopping rules as the seller
// pull: empty page, declared total reached, or zero new orders on a
// page. A transport failure ends the pull with partial results intact.
func (c *Client) ListOrders(ctx context.Context, w export.Window) ([]export.Entity, error) {
	dedup := export.NewDeduplicator(c.log, "orderId")
	var orders []export.Entity
	var total int64 = -1

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("f_creationDate", w.CreationDateFilter())
		params.Set("per_page", strconv.Itoa(orderPageSize))
		params.Set("page", strconv.Itoa(page))

		body, err := c.getJSON(ctx, orderListPath, params)
		if err != nil {
			c.log.Error("order page fetch failed, keeping partial results",
				zap.Int("page", page), zap.Error(err))
			return orders, err
		}

		root := gjson.ParseBytes(body)
		if total < 0 {
			if t := root.Get("paging.total"); t.Exists() {
				total = t.Int()
				c.log.Info("order list total declared", zap.Int64("total", total))
			}
		}

		returned, fresh := 0, 0
		root.Get("list").ForEach(func(_, item gjson.Result) bool {
			returned++
			e, ok := export.EntityOf(item)
			if !ok {
				return true
			}
			if dedup.Accept(e) {
				orders = append(orders, e)
				fresh++
			}
			return true
		})

		c.log.Info("order page collected",
			zap.Int("page", page),
			zap.Int("returned", returned),
			zap.Int("new", fresh),
			zap.Int("accumulated", len(orders)),
			zap.Int64("declared_total", total))

		if returned == 0 || fresh == 0 {
			break
		}
		if total >= 0 && int64(len(orders)) >= total {
			break
		}
		c.pause()
	}

	if n := dedup.Skipped(); n > 0 {
		c.log.Warn("orders dropped for lacking an identifier", zap.Int("count", n))
	}
	return orders, nil
}

// GetOrder fetches one order's full detail, retrying per the client's
// policy. Callers fall back to the summary they already hold when the
// attempts run out.
func (c *Client) GetOrder(ctx context.Context, orderID string) (export.Entity, error) {
	var detail export.Entity
	err := c.retry.Do(func() error {
		body, err := c.getJSON(ctx, orderListPath+"/"+url.PathEscape(orderID), nil)
		if err != nil {
			return err
		}
		e, ok := export.ParseEntity(string(body))
		if !ok {
			return fmt.Errorf("order %s: detail response is not a JSON object", orderID)
		}
		detail = e
		return nil
	})
	return detail, err
}

// FlattenOrderItems builds one export row per line item of an order
// detail. The order's creation date is localized; extractedAt stamps
// when the run pulled the data. An order without items (a summary kept
// after detail fetches failed) yields no rows.
func FlattenOrderItems(order export.Entity, extractedAt string) []export.Row {
	created := export.ToLocal(order.Get("creationDate").String())
	orderID := order.Identifier("orderId")

	var rows []export.Row
	order.Get("items").ForEach(func(_, item gjson.Result) bool {
		rows = append(rows, export.Row{
			"creationDate":              created,
			"orderId":                   orderID,
			"additionalInfo_categories": export.FieldText(item.Get("additionalInfo.categories")),
			"name":                      export.FieldText(item.Get("name")),
			"price":                     export.FieldText(item.Get("price")),
			"listPrice":                 export.FieldText(item.Get("listPrice")),
			"quantity":                  export.FieldText(item.Get("quantity")),
			"productId":                 export.FieldText(item.Get("productId")),
			"seller":                    export.FieldText(item.Get("seller")),
			"data_extracao":             extractedAt,
		})
		return true
	})
	return rows
}
