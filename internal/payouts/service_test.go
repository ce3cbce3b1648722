package payouts_test

import (
	"context"
	"testing"

	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/collection"
	"github.com/nexodus-tech/vendor-console/internal/models"
	"github.com/nexodus-tech/vendor-console/internal/payouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(client *api.MockClient) *payouts.Service {
	list := collection.New(5, func(ctx context.Context, q collection.Query) (collection.Page[models.Payout], error) {
		items, total, err := client.ListPayouts(ctx, api.ListQuery{Limit: q.PageSize, Page: q.Page})
		return collection.Page[models.Payout]{Items: items, TotalCount: total}, err
	})
	return payouts.NewService(client, list)
}

func TestServiceSubmit(t *testing.T) {
	client := api.NewMockClient()
	svc := newService(client)
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx))
	require.InDelta(t, 500, svc.Balance().Available, 1e-9)
	before := svc.List().TotalCount()

	req := payouts.Request{
		Amount:         "150",
		PaymentMethod:  models.PayoutMethodPayPal,
		PaymentDetails: "mara@example.com",
	}
	require.NoError(t, svc.Submit(ctx, req))

	// Submission refreshes both views: the balance moved and the new payout
	// shows up pending in the history.
	assert.InDelta(t, 350, svc.Balance().Available, 1e-9)
	assert.InDelta(t, 230, svc.Balance().Pending, 1e-9)
	assert.Equal(t, before+1, svc.List().TotalCount())

	items := svc.List().Items()
	last := items[len(items)-1]
	assert.Equal(t, models.PayoutStatusPending, last.Status)
	assert.Nil(t, last.ProcessedAt)
}

func TestServiceSubmitRejectedLocally(t *testing.T) {
	client := api.NewMockClient()
	svc := newService(client)
	ctx := context.Background()
	require.NoError(t, svc.Refresh(ctx))
	before := svc.List().TotalCount()

	req := payouts.Request{
		Amount:         "600",
		PaymentMethod:  models.PayoutMethodPayPal,
		PaymentDetails: "mara@example.com",
	}
	err := svc.Submit(ctx, req)

	var rerr *api.BusinessRuleError
	require.ErrorAs(t, err, &rerr)
	assert.InDelta(t, 500, svc.Balance().Available, 1e-9, "rejected request must not touch the ledger")
	assert.Equal(t, before, svc.List().TotalCount())
}
