// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
	"giftshop/internal/store/memory"
)

var fixedNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

type recordingNotifier struct {
	mu    sync.Mutex
	sent  []catalog.Notification
	fail  bool
	calls int
}

func (n *recordingNotifier) Notify(_ context.Context, msg catalog.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	if n.fail {
		return errors.New("smtp relay down")
	}
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.sent))
	for i, m := range n.sent {
		out[i] = m.Event
	}
	return out
}

type testEnv struct {
	svc      *catalog.Service
	store    *memory.Store
	notifier *recordingNotifier
	now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{store: memory.New(), notifier: &recordingNotifier{}, now: fixedNow}
	deps := env.store.Deps()
	deps.Notifier = env.notifier
	deps.Clock = func() time.Time { return env.now }
	svc, err := catalog.New(deps)
	require.NoError(t, err)
	env.svc = svc
	return env
}

// tick advances the fake clock so successive creates sort deterministically.
func (e *testEnv) tick() {
	e.now = e.now.Add(time.Minute)
}

func requireCode(t *testing.T, err error, kind catalog.Kind, code string) {
	t.Helper()
	require.Error(t, err)
	var ce *catalog.Error
	require.True(t, errors.As(err, &ce), "expected *catalog.Error, got %T: %v", err, err)
	assert.Equal(t, kind, ce.Kind, "kind for %s", ce.Code)
	assert.Equal(t, code, ce.Code)
}

func intp(v int) *int       { return &v }
func boolp(v bool) *bool    { return &v }
func strp(v string) *string { return &v }
func id64(v int64) *int64   { return &v }

func TestNewRequiresRepositories(t *testing.T) {
	deps := memory.New().Deps()
	deps.Orders = nil
	_, err := catalog.New(deps)
	assert.Error(t, err)
}

// ----- Orders -----

func validOrder() catalog.CreateOrderInput {
	return catalog.CreateOrderInput{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "JANE@X.COM ",
		CustomerPhone:   "123",
		ShippingAddress: "1 Main St",
		TotalAmount:     decimal.NewFromInt(500),
		Items: []models.OrderItem{
			{ProductID: id64(1), Quantity: 2, UnitPrice: decimal.NewFromInt(250)},
		},
	}
}

func TestCreateOrderScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	o, err := env.svc.CreateOrder(ctx, validOrder())
	require.NoError(t, err)
	env.svc.Wait()

	assert.NotZero(t, o.ID)
	assert.Equal(t, "jane@x.com", o.CustomerEmail)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, fixedNow, o.CreatedAt)
	assert.Equal(t, fixedNow, o.UpdatedAt)
	require.Len(t, o.Items, 1)
	assert.Equal(t, int64(1), *o.Items[0].ProductID)
	assert.Nil(t, o.Notes)

	assert.Equal(t, []string{catalog.EventOrderCreated}, env.notifier.events())
}

func TestCreateOrderValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*catalog.CreateOrderInput)
		code   string
	}{
		{"missing everything reports name first", func(in *catalog.CreateOrderInput) { *in = catalog.CreateOrderInput{} }, "MISSING_CUSTOMER_NAME"},
		{"blank name", func(in *catalog.CreateOrderInput) { in.CustomerName = "   " }, "MISSING_CUSTOMER_NAME"},
		{"missing email", func(in *catalog.CreateOrderInput) { in.CustomerEmail = "" }, "MISSING_CUSTOMER_EMAIL"},
		{"loose email rejected", func(in *catalog.CreateOrderInput) { in.CustomerEmail = "a@bc" }, "INVALID_EMAIL"},
		{"email before phone", func(in *catalog.CreateOrderInput) { in.CustomerEmail = "bad"; in.CustomerPhone = "" }, "INVALID_EMAIL"},
		{"missing phone", func(in *catalog.CreateOrderInput) { in.CustomerPhone = "" }, "MISSING_CUSTOMER_PHONE"},
		{"missing address", func(in *catalog.CreateOrderInput) { in.ShippingAddress = "" }, "MISSING_SHIPPING_ADDRESS"},
		{"zero total", func(in *catalog.CreateOrderInput) { in.TotalAmount = decimal.Zero }, "INVALID_TOTAL_AMOUNT"},
		{"negative total", func(in *catalog.CreateOrderInput) { in.TotalAmount = decimal.NewFromInt(-5) }, "INVALID_TOTAL_AMOUNT"},
		{"no items", func(in *catalog.CreateOrderInput) { in.Items = nil }, "MISSING_ITEMS"},
		{"zero quantity", func(in *catalog.CreateOrderInput) { in.Items[0].Quantity = 0 }, "INVALID_ITEM"},
		{"negative unit price", func(in *catalog.CreateOrderInput) { in.Items[0].UnitPrice = decimal.NewFromInt(-1) }, "INVALID_ITEM"},
		{"item without product or name", func(in *catalog.CreateOrderInput) { in.Items[0].ProductID = nil }, "INVALID_ITEM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			in := validOrder()
			tt.mutate(&in)
			_, err := env.svc.CreateOrder(context.Background(), in)
			requireCode(t, err, catalog.KindValidation, tt.code)

			orders, lerr := env.svc.ListOrders(context.Background(), catalog.OrderFilter{})
			require.NoError(t, lerr)
			assert.Empty(t, orders, "validation failures must not reach storage")
		})
	}
}

func TestCreateOrderNamedItemAndNotes(t *testing.T) {
	env := newTestEnv(t)
	in := validOrder()
	in.Items = []models.OrderItem{{Name: "  Custom card  ", Quantity: 1, UnitPrice: decimal.NewFromInt(500)}}
	in.Notes = strp("   ")

	o, err := env.svc.CreateOrder(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Custom card", o.Items[0].Name)
	assert.Nil(t, o.Notes, "blank notes are dropped")
	assert.Equal(t, "  Custom card  ", in.Items[0].Name, "normalizer must not mutate input")
}

func TestUpdateOrderStatusClosure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o, err := env.svc.CreateOrder(ctx, validOrder())
	require.NoError(t, err)

	for _, s := range []string{"processing", "shipped", "delivered", "cancelled", "pending"} {
		env.tick()
		got, err := env.svc.UpdateOrderStatus(ctx, o.ID, s)
		require.NoError(t, err, s)
		assert.Equal(t, models.OrderStatus(s), got.Status)
		assert.Equal(t, env.now, got.UpdatedAt, "transition stamps updatedAt")
		assert.Equal(t, o.CreatedAt, got.CreatedAt)
	}

	for _, s := range []string{"refunded", "Pending", "confirmed"} {
		_, err := env.svc.UpdateOrderStatus(ctx, o.ID, s)
		requireCode(t, err, catalog.KindValidation, "INVALID_STATUS")
	}

	_, err = env.svc.UpdateOrderStatus(ctx, o.ID, "  ")
	requireCode(t, err, catalog.KindValidation, "MISSING_STATUS")

	_, err = env.svc.UpdateOrderStatus(ctx, 999, "shipped")
	requireCode(t, err, catalog.KindNotFound, "ORDER_NOT_FOUND")
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.svc.CreateOrder(ctx, validOrder())
	require.NoError(t, err)
	env.tick()
	other := validOrder()
	other.CustomerEmail = "bob@example.com"
	second, err := env.svc.CreateOrder(ctx, other)
	require.NoError(t, err)
	_, err = env.svc.UpdateOrderStatus(ctx, second.ID, "shipped")
	require.NoError(t, err)

	all, err := env.svc.ListOrders(ctx, catalog.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	shipped, err := env.svc.ListOrders(ctx, catalog.OrderFilter{Status: "shipped"})
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, second.ID, shipped[0].ID)

	_, err = env.svc.ListOrders(ctx, catalog.OrderFilter{Status: "lost"})
	requireCode(t, err, catalog.KindValidation, "INVALID_STATUS")

	mine, err := env.svc.ListOrdersByEmail(ctx, " Jane@X.com", catalog.Page{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	_, err = env.svc.ListOrdersByEmail(ctx, "", catalog.Page{})
	requireCode(t, err, catalog.KindValidation, "MISSING_EMAIL")
}

func TestOrderGetIsIdempotentAndDeleteReturnsRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o, err := env.svc.CreateOrder(ctx, validOrder())
	require.NoError(t, err)

	a, err := env.svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	b, err := env.svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	deleted, err := env.svc.DeleteOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, a, deleted)

	_, err = env.svc.GetOrder(ctx, o.ID)
	requireCode(t, err, catalog.KindNotFound, "ORDER_NOT_FOUND")
}

func TestNotificationFailureDoesNotFailCreate(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.fail = true

	_, err := env.svc.CreateOrder(context.Background(), validOrder())
	require.NoError(t, err)
	env.svc.Wait()
	assert.Equal(t, 1, env.notifier.calls)
}

func TestNotificationOutlivesRequestContext(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := env.svc.CreateAppointment(ctx, validAppointment())
	require.NoError(t, err)
	cancel()
	env.svc.Wait()
	assert.Equal(t, []string{catalog.EventAppointmentCreated}, env.notifier.events())
}

// ----- Appointments -----

func validAppointment() catalog.CreateAppointmentInput {
	return catalog.CreateAppointmentInput{
		Name:          " Ana ",
		Email:         " Ana@Example.COM",
		Phone:         "555",
		PreferredDate: "2026-06-01",
		PreferredTime: "10:00",
		OccasionType:  "wedding",
		Message:       strp(" hello "),
	}
}

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)
	a, err := env.svc.CreateAppointment(context.Background(), validAppointment())
	require.NoError(t, err)
	assert.Equal(t, "Ana", a.Name)
	assert.Equal(t, "ana@example.com", a.Email)
	assert.Equal(t, models.AppointmentStatusPending, a.Status)
	require.NotNil(t, a.Message)
	assert.Equal(t, "hello", *a.Message)
}

func TestCreateAppointmentValidationOrder(t *testing.T) {
	tests := []struct {
		mutate func(*catalog.CreateAppointmentInput)
		code   string
	}{
		{func(in *catalog.CreateAppointmentInput) { in.Name = "" }, "MISSING_NAME"},
		{func(in *catalog.CreateAppointmentInput) { in.Email = "" }, "MISSING_EMAIL"},
		{func(in *catalog.CreateAppointmentInput) { in.Email = "nope"; in.Phone = "" }, "INVALID_EMAIL"},
		{func(in *catalog.CreateAppointmentInput) { in.Phone = "" }, "MISSING_PHONE"},
		{func(in *catalog.CreateAppointmentInput) { in.PreferredDate = "" }, "MISSING_PREFERRED_DATE"},
		{func(in *catalog.CreateAppointmentInput) { in.PreferredTime = "" }, "MISSING_PREFERRED_TIME"},
		{func(in *catalog.CreateAppointmentInput) { in.OccasionType = " " }, "MISSING_OCCASION_TYPE"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			env := newTestEnv(t)
			in := validAppointment()
			tt.mutate(&in)
			_, err := env.svc.CreateAppointment(context.Background(), in)
			requireCode(t, err, catalog.KindValidation, tt.code)
		})
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a, err := env.svc.CreateAppointment(ctx, validAppointment())
	require.NoError(t, err)

	got, err := env.svc.UpdateAppointmentStatus(ctx, a.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusConfirmed, got.Status)
	assert.Equal(t, a.CreatedAt, got.CreatedAt)

	_, err = env.svc.UpdateAppointmentStatus(ctx, a.ID, "shipped")
	requireCode(t, err, catalog.KindValidation, "INVALID_STATUS")
	_, err = env.svc.UpdateAppointmentStatus(ctx, a.ID, "")
	requireCode(t, err, catalog.KindValidation, "MISSING_STATUS")
	_, err = env.svc.UpdateAppointmentStatus(ctx, 42, "confirmed")
	requireCode(t, err, catalog.KindNotFound, "APPOINTMENT_NOT_FOUND")

	confirmed, err := env.svc.ListAppointments(ctx, catalog.AppointmentFilter{Status: "confirmed"})
	require.NoError(t, err)
	assert.Len(t, confirmed, 1)
	_, err = env.svc.ListAppointments(ctx, catalog.AppointmentFilter{Status: "approved"})
	requireCode(t, err, catalog.KindValidation, "INVALID_STATUS")
}

// ----- Testimonials -----

func validTestimonial(rating int) catalog.CreateTestimonialInput {
	return catalog.CreateTestimonialInput{
		Name:    "Mia",
		Role:    "Bride",
		Content: "Beautiful invitations",
		Rating:  intp(rating),
		Image:   "https://cdn.example.com/mia.jpg",
	}
}

func TestTestimonialRatingBound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, r := range []int{0, 6, -1} {
		_, err := env.svc.CreateTestimonial(ctx, validTestimonial(r))
		requireCode(t, err, catalog.KindValidation, "INVALID_RATING")
	}
	for _, r := range []int{1, 5} {
		got, err := env.svc.CreateTestimonial(ctx, validTestimonial(r))
		require.NoError(t, err)
		assert.Equal(t, r, got.Rating)
		assert.True(t, got.IsFeatured, "isFeatured defaults to true")
	}
}

func TestTestimonialValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := validTestimonial(3)
	in.Rating = nil
	_, err := env.svc.CreateTestimonial(ctx, in)
	requireCode(t, err, catalog.KindValidation, "MISSING_RATING")

	// Missing image is reported before an out-of-range rating.
	in = validTestimonial(9)
	in.Image = ""
	_, err = env.svc.CreateTestimonial(ctx, in)
	requireCode(t, err, catalog.KindValidation, "MISSING_IMAGE")

	in = validTestimonial(3)
	in.Role = ""
	_, err = env.svc.CreateTestimonial(ctx, in)
	requireCode(t, err, catalog.KindValidation, "MISSING_ROLE")
}

func TestUpdateTestimonialPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.svc.CreateTestimonial(ctx, validTestimonial(4))
	require.NoError(t, err)

	got, err := env.svc.UpdateTestimonial(ctx, created.ID, catalog.UpdateTestimonialInput{
		Content:    catalog.Some("  Even better  "),
		IsFeatured: catalog.Some(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Even better", got.Content)
	assert.False(t, got.IsFeatured)
	assert.Equal(t, created.Name, got.Name, "absent fields are untouched")
	assert.Equal(t, 4, got.Rating)

	_, err = env.svc.UpdateTestimonial(ctx, created.ID, catalog.UpdateTestimonialInput{Rating: catalog.Some(6)})
	requireCode(t, err, catalog.KindValidation, "INVALID_RATING")
	_, err = env.svc.UpdateTestimonial(ctx, created.ID, catalog.UpdateTestimonialInput{Name: catalog.Some(" ")})
	requireCode(t, err, catalog.KindValidation, "INVALID_NAME")
	_, err = env.svc.UpdateTestimonial(ctx, created.ID, catalog.UpdateTestimonialInput{Role: catalog.Null[string]()})
	requireCode(t, err, catalog.KindValidation, "INVALID_ROLE")
	_, err = env.svc.UpdateTestimonial(ctx, 777, catalog.UpdateTestimonialInput{})
	requireCode(t, err, catalog.KindNotFound, "TESTIMONIAL_NOT_FOUND")

	featured, err := env.svc.ListTestimonials(ctx, catalog.TestimonialFilter{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, featured)

	deleted, err := env.svc.DeleteTestimonial(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
}

// ----- Stories & comments -----

func validStory() catalog.CreateStoryInput {
	return catalog.CreateStoryInput{
		Title:   "  A Garden Wedding ",
		Client:  "The Smiths",
		Date:    "June 2025",
		Excerpt: "Pressed flowers",
		Content: "**Lovely** day",
		Image:   "https://cdn.example.com/garden.jpg",
	}
}

func TestCreateStoryTrimsAndValidates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	st, err := env.svc.CreateStory(ctx, validStory())
	require.NoError(t, err)
	assert.Equal(t, "A Garden Wedding", st.Title)

	for field, code := range map[string]string{
		"title": "MISSING_TITLE", "client": "MISSING_CLIENT", "date": "MISSING_DATE",
		"excerpt": "MISSING_EXCERPT", "content": "MISSING_CONTENT", "image": "MISSING_IMAGE",
	} {
		in := validStory()
		switch field {
		case "title":
			in.Title = ""
		case "client":
			in.Client = ""
		case "date":
			in.Date = ""
		case "excerpt":
			in.Excerpt = ""
		case "content":
			in.Content = ""
		case "image":
			in.Image = ""
		}
		_, err := env.svc.CreateStory(ctx, in)
		requireCode(t, err, catalog.KindValidation, code)
	}
}

func TestUpdateStoryRefreshesUpdatedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	st, err := env.svc.CreateStory(ctx, validStory())
	require.NoError(t, err)

	env.tick()
	got, err := env.svc.UpdateStory(ctx, st.ID, catalog.UpdateStoryInput{Excerpt: catalog.Some(" New ")})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Excerpt)
	assert.Equal(t, st.Title, got.Title)
	assert.Equal(t, env.now, got.UpdatedAt)
	assert.Equal(t, st.CreatedAt, got.CreatedAt)

	_, err = env.svc.UpdateStory(ctx, st.ID, catalog.UpdateStoryInput{Title: catalog.Some("")})
	requireCode(t, err, catalog.KindValidation, "INVALID_TITLE")
	_, err = env.svc.UpdateStory(ctx, 404, catalog.UpdateStoryInput{Title: catalog.Some("x")})
	requireCode(t, err, catalog.KindNotFound, "STORY_NOT_FOUND")
}

func TestListStoriesSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.svc.CreateStory(ctx, validStory())
	require.NoError(t, err)
	other := validStory()
	other.Title, other.Client, other.Excerpt = "Beach Party", "Lee", "Seashells"
	_, err = env.svc.CreateStory(ctx, other)
	require.NoError(t, err)

	for q, want := range map[string]int{"garden": 1, "LEE": 1, "shell": 1, "": 2, "zzz": 0} {
		got, err := env.svc.ListStories(ctx, catalog.StoryFilter{Search: q})
		require.NoError(t, err)
		assert.Len(t, got, want, "search %q", q)
	}
}

func TestCommentVisibilityGate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	st, err := env.svc.CreateStory(ctx, validStory())
	require.NoError(t, err)

	ids := map[string]int64{}
	for _, status := range []string{"pending", "approved", "rejected"} {
		env.tick()
		c, err := env.svc.CreateComment(ctx, catalog.CreateCommentInput{
			StoryID: st.ID, Name: status, Email: "reader@example.com", Message: "Lovely!",
		})
		require.NoError(t, err)
		assert.Equal(t, models.CommentStatusPending, c.Status)
		if status != "pending" {
			_, err = env.svc.ModerateComment(ctx, c.ID, status)
			require.NoError(t, err)
		}
		ids[status] = c.ID
	}

	public, err := env.svc.ListCommentsForStory(ctx, st.ID, "", catalog.Page{})
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, ids["approved"], public[0].ID)

	everything, err := env.svc.ListCommentsForStory(ctx, st.ID, "all", catalog.Page{})
	require.NoError(t, err)
	assert.Len(t, everything, 3)

	pending, err := env.svc.ListComments(ctx, "pending", 0, catalog.Page{})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ids["pending"], pending[0].ID)

	queue, err := env.svc.ListComments(ctx, "", st.ID, catalog.Page{})
	require.NoError(t, err)
	assert.Len(t, queue, 3)

	_, err = env.svc.ListComments(ctx, "spam", 0, catalog.Page{})
	requireCode(t, err, catalog.KindValidation, "INVALID_STATUS")
}

func TestCreateCommentReferentialGuard(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.CreateComment(context.Background(), catalog.CreateCommentInput{
		StoryID: 12345, Name: "X", Email: "x@example.com", Message: "hi",
	})
	requireCode(t, err, catalog.KindNotFound, "STORY_NOT_FOUND")
}

func TestCreateCommentValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tests := []struct {
		in   catalog.CreateCommentInput
		code string
	}{
		{catalog.CreateCommentInput{}, "MISSING_STORY_ID"},
		{catalog.CreateCommentInput{StoryID: 1}, "MISSING_NAME"},
		{catalog.CreateCommentInput{StoryID: 1, Name: "a"}, "MISSING_EMAIL"},
		{catalog.CreateCommentInput{StoryID: 1, Name: "a", Email: "bad"}, "MISSING_MESSAGE"},
		{catalog.CreateCommentInput{StoryID: 1, Name: "a", Email: "bad", Message: "m"}, "INVALID_EMAIL"},
	}
	for _, tt := range tests {
		_, err := env.svc.CreateComment(ctx, tt.in)
		requireCode(t, err, catalog.KindValidation, tt.code)
	}
}

func TestModerateComment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	st, err := env.svc.CreateStory(ctx, validStory())
	require.NoError(t, err)
	c, err := env.svc.CreateComment(ctx, catalog.CreateCommentInput{StoryID: st.ID, Name: "a", Email: "a@b.co", Message: "m"})
	require.NoError(t, err)

	_, err = env.svc.ModerateComment(ctx, c.ID, "")
	requireCode(t, err, catalog.KindValidation, "MISSING_STATUS")
	_, err = env.svc.ModerateComment(ctx, c.ID, "hidden")
	requireCode(t, err, catalog.KindValidation, "INVALID_STATUS")
	_, err = env.svc.ModerateComment(ctx, 999, "approved")
	requireCode(t, err, catalog.KindNotFound, "COMMENT_NOT_FOUND")

	_, err = env.svc.DeleteStory(ctx, st.ID)
	require.NoError(t, err)
	left, err := env.svc.ListComments(ctx, "", st.ID, catalog.Page{})
	require.NoError(t, err)
	assert.Len(t, left, 1, "deleting a story keeps its comments")

	deleted, err := env.svc.DeleteComment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)
}

// ----- Categories -----

func TestCategorySlugUniqueness(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	x, err := env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "X", Slug: "x"})
	require.NoError(t, err)
	assert.Equal(t, 0, x.DisplayOrder)
	assert.Nil(t, x.ImageURL)

	_, err = env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "X again", Slug: " x "})
	requireCode(t, err, catalog.KindConflict, "DUPLICATE_SLUG")

	y, err := env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "Y", Slug: "y", DisplayOrder: intp(1)})
	require.NoError(t, err)

	_, err = env.svc.UpdateCategory(ctx, y.ID, catalog.UpdateCategoryInput{Slug: catalog.Some("x")})
	requireCode(t, err, catalog.KindConflict, "DUPLICATE_SLUG")

	same, err := env.svc.UpdateCategory(ctx, x.ID, catalog.UpdateCategoryInput{Slug: catalog.Some("x"), Name: catalog.Some("X2")})
	require.NoError(t, err, "unchanged slug never conflicts")
	assert.Equal(t, "X2", same.Name)
}

func TestCategoryValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Slug: "s"})
	requireCode(t, err, catalog.KindValidation, "MISSING_NAME")
	_, err = env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "n"})
	requireCode(t, err, catalog.KindValidation, "MISSING_SLUG")
	_, err = env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "n", Slug: "s", DisplayOrder: intp(-1)})
	requireCode(t, err, catalog.KindValidation, "INVALID_DISPLAY_ORDER")

	_, err = env.svc.UpdateCategory(ctx, 99, catalog.UpdateCategoryInput{Name: catalog.Some("")})
	requireCode(t, err, catalog.KindNotFound, "CATEGORY_NOT_FOUND")

	c, err := env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "n", Slug: "s", ImageURL: strp(" https://cdn/x.png ")})
	require.NoError(t, err)
	require.NotNil(t, c.ImageURL)
	assert.Equal(t, "https://cdn/x.png", *c.ImageURL)

	_, err = env.svc.UpdateCategory(ctx, c.ID, catalog.UpdateCategoryInput{Slug: catalog.Some(" ")})
	requireCode(t, err, catalog.KindValidation, "INVALID_SLUG")
	_, err = env.svc.UpdateCategory(ctx, c.ID, catalog.UpdateCategoryInput{DisplayOrder: catalog.Some(-3)})
	requireCode(t, err, catalog.KindValidation, "INVALID_DISPLAY_ORDER")

	cleared, err := env.svc.UpdateCategory(ctx, c.ID, catalog.UpdateCategoryInput{ImageURL: catalog.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.ImageURL)
}

func TestListCategoriesOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, c := range []struct {
		slug  string
		order int
	}{{"c", 3}, {"a", 1}, {"b", 2}} {
		_, err := env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: c.slug, Slug: c.slug, DisplayOrder: intp(c.order)})
		require.NoError(t, err)
	}
	got, err := env.svc.ListCategories(ctx, catalog.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Slug, got[1].Slug, got[2].Slug})

	deleted, err := env.svc.DeleteCategory(ctx, got[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "a", deleted.Slug)
	_, err = env.svc.GetCategory(ctx, got[0].ID)
	requireCode(t, err, catalog.KindNotFound, "CATEGORY_NOT_FOUND")
}

func TestSuggestSlug(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, "wedding-invitations", env.svc.SuggestSlug("  Wedding Invitations "))
}

// ----- Tracking codes -----

func TestTrackingCodeUpsertScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, created, err := env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "meta_pixel", Code: "<script>A</script>"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, first.IsActive)

	env.tick()
	second, created, err := env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "meta_pixel", Code: "<script>B</script>"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "<script>B</script>", second.Code)
	assert.Equal(t, env.now, second.UpdatedAt)

	all, err := env.svc.ListTrackingCodes(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.TrackingCodeMetaPixel, all[0].Type)
}

func TestTrackingCodeUpsertActiveFlag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "meta_pixel", Code: "a"})
	require.NoError(t, err)

	paused, created, err := env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "meta_pixel", Code: "a", IsActive: boolp(false)})
	require.NoError(t, err)
	assert.False(t, created)
	assert.False(t, paused.IsActive)

	// Leaving the flag out turns the code back on.
	resumed, _, err := env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "meta_pixel", Code: "a"})
	require.NoError(t, err)
	assert.True(t, resumed.IsActive)
}

func TestTrackingCodeValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Code: "x"})
	requireCode(t, err, catalog.KindValidation, "MISSING_TYPE")
	_, _, err = env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "meta_pixel"})
	requireCode(t, err, catalog.KindValidation, "MISSING_CODE")
	_, _, err = env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "tiktok", Code: "x"})
	requireCode(t, err, catalog.KindValidation, "INVALID_TYPE")

	_, err = env.svc.GetTrackingCode(ctx, "google_adsense")
	requireCode(t, err, catalog.KindNotFound, "TRACKING_CODE_NOT_FOUND")
	_, err = env.svc.DeleteTrackingCode(ctx, "bogus")
	requireCode(t, err, catalog.KindValidation, "INVALID_TYPE")
}

func TestTrackingCodeActiveFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, _, err := env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "meta_pixel", Code: "a"})
	require.NoError(t, err)
	_, _, err = env.svc.UpsertTrackingCode(ctx, catalog.UpsertTrackingCodeInput{Type: "google_adsense", Code: "b", IsActive: boolp(false)})
	require.NoError(t, err)

	active, err := env.svc.ListTrackingCodes(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, models.TrackingCodeMetaPixel, active[0].Type)

	deleted, err := env.svc.DeleteTrackingCode(ctx, "google_adsense")
	require.NoError(t, err)
	assert.Equal(t, "b", deleted.Code)
}

// ----- Hero slides -----

func validSlide(order int) catalog.CreateHeroSlideInput {
	return catalog.CreateHeroSlideInput{
		Title: "Spring", Subtitle: "New season", Description: "Fresh designs",
		Image: "https://cdn.example.com/s.jpg", ButtonText: "Shop", ButtonLink: "/shop",
		DisplayOrder: intp(order),
	}
}

func TestHeroSlides(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	second, err := env.svc.CreateHeroSlide(ctx, validSlide(2))
	require.NoError(t, err)
	first, err := env.svc.CreateHeroSlide(ctx, validSlide(1))
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	hidden := validSlide(0)
	hidden.IsActive = boolp(false)
	_, err = env.svc.CreateHeroSlide(ctx, hidden)
	require.NoError(t, err)

	active, err := env.svc.ListHeroSlides(ctx, catalog.HeroSlideFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)

	all, err := env.svc.ListHeroSlides(ctx, catalog.HeroSlideFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	in := validSlide(1)
	in.ButtonLink = ""
	_, err = env.svc.CreateHeroSlide(ctx, in)
	requireCode(t, err, catalog.KindValidation, "MISSING_BUTTON_LINK")

	updated, err := env.svc.UpdateHeroSlide(ctx, second.ID, catalog.UpdateHeroSlideInput{IsActive: catalog.Some(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, second.Title, updated.Title)

	_, err = env.svc.UpdateHeroSlide(ctx, second.ID, catalog.UpdateHeroSlideInput{Subtitle: catalog.Some("")})
	requireCode(t, err, catalog.KindValidation, "INVALID_SUBTITLE")
	_, err = env.svc.DeleteHeroSlide(ctx, 999)
	requireCode(t, err, catalog.KindNotFound, "SLIDE_NOT_FOUND")
}

// ----- Products -----

func TestProducts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.CreateProduct(ctx, catalog.CreateProductInput{
		Name: " Foil Card ", Description: "Gold foil", Price: decimal.RequireFromString("12.50"),
		Category: "wedding", Image: "https://cdn.example.com/p.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Foil Card", p.Name)

	_, err = env.svc.CreateProduct(ctx, catalog.CreateProductInput{Name: "x", Description: "y", Category: "c", Image: "i"})
	requireCode(t, err, catalog.KindValidation, "INVALID_PRICE")
	_, err = env.svc.CreateProduct(ctx, catalog.CreateProductInput{Name: "x", Price: decimal.NewFromInt(1)})
	requireCode(t, err, catalog.KindValidation, "MISSING_DESCRIPTION")

	list, err := env.svc.ListProducts(ctx, catalog.ProductFilter{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, err = env.svc.ListProducts(ctx, catalog.ProductFilter{Category: "birthday"})
	require.NoError(t, err)
	assert.Empty(t, list)

	env.tick()
	up, err := env.svc.UpdateProduct(ctx, p.ID, catalog.UpdateProductInput{Price: catalog.Some(decimal.NewFromInt(15))})
	require.NoError(t, err)
	assert.True(t, up.Price.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, env.now, up.UpdatedAt)

	_, err = env.svc.UpdateProduct(ctx, p.ID, catalog.UpdateProductInput{Price: catalog.Some(decimal.Zero)})
	requireCode(t, err, catalog.KindValidation, "INVALID_PRICE")
	_, err = env.svc.DeleteProduct(ctx, 555)
	requireCode(t, err, catalog.KindNotFound, "PRODUCT_NOT_FOUND")
}

func TestAmountsMustFitStorage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := func(price string) catalog.CreateProductInput {
		return catalog.CreateProductInput{
			Name: "Card", Description: "Letterpress", Price: decimal.RequireFromString(price),
			Category: "wedding", Image: "https://cdn.example.com/c.jpg",
		}
	}

	for _, price := range []string{"0.001", "12.345", "10000000000", "99999999999"} {
		_, err := env.svc.CreateProduct(ctx, product(price))
		requireCode(t, err, catalog.KindValidation, "INVALID_PRICE")
	}

	p, err := env.svc.CreateProduct(ctx, product("9999999999.99"))
	require.NoError(t, err)
	_, err = env.svc.UpdateProduct(ctx, p.ID, catalog.UpdateProductInput{Price: catalog.Some(decimal.RequireFromString("0.005"))})
	requireCode(t, err, catalog.KindValidation, "INVALID_PRICE")

	for _, total := range []string{"0.004", "20000000000"} {
		in := validOrder()
		in.TotalAmount = decimal.RequireFromString(total)
		_, err = env.svc.CreateOrder(ctx, in)
		requireCode(t, err, catalog.KindValidation, "INVALID_TOTAL_AMOUNT")
	}
	in := validOrder()
	in.TotalAmount = decimal.RequireFromString("500.10")
	_, err = env.svc.CreateOrder(ctx, in)
	require.NoError(t, err)
	env.svc.Wait()
}

func TestDisplayOrderMustFitStorage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tooBig := math.MaxInt32 + 1

	_, err := env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "n", Slug: "s", DisplayOrder: intp(tooBig)})
	requireCode(t, err, catalog.KindValidation, "INVALID_DISPLAY_ORDER")
	c, err := env.svc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "n", Slug: "s", DisplayOrder: intp(math.MaxInt32)})
	require.NoError(t, err)
	_, err = env.svc.UpdateCategory(ctx, c.ID, catalog.UpdateCategoryInput{DisplayOrder: catalog.Some(tooBig)})
	requireCode(t, err, catalog.KindValidation, "INVALID_DISPLAY_ORDER")

	slide := validSlide(0)
	slide.DisplayOrder = intp(tooBig)
	_, err = env.svc.CreateHeroSlide(ctx, slide)
	requireCode(t, err, catalog.KindValidation, "INVALID_DISPLAY_ORDER")
	h, err := env.svc.CreateHeroSlide(ctx, validSlide(-2))
	require.NoError(t, err, "slides may sort before zero")
	_, err = env.svc.UpdateHeroSlide(ctx, h.ID, catalog.UpdateHeroSlideInput{DisplayOrder: catalog.Some(math.MinInt32 - 1)})
	requireCode(t, err, catalog.KindValidation, "INVALID_DISPLAY_ORDER")
}

// ----- Storage failures -----

// brokenStories fails every Get with err.
type brokenStories struct {
	catalog.StoryRepository
	err error
}

func (b brokenStories) Get(context.Context, int64) (models.Story, error) {
	return models.Story{}, b.err
}

// brokenProducts fails every Create with err.
type brokenProducts struct {
	catalog.ProductRepository
	err error
}

func (b brokenProducts) Create(context.Context, models.Product) (models.Product, error) {
	return models.Product{}, b.err
}

func TestStorageFailureBecomesInternalError(t *testing.T) {
	driverErr := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

	core, logs := observer.New(zap.ErrorLevel)
	deps := memory.New().Deps()
	deps.Stories = brokenStories{StoryRepository: deps.Stories, err: driverErr}
	deps.Products = brokenProducts{ProductRepository: deps.Products, err: driverErr}
	deps.Logger = zap.New(core)
	svc, err := catalog.New(deps)
	require.NoError(t, err)
	ctx := context.Background()

	_, commentErr := svc.CreateComment(ctx, catalog.CreateCommentInput{
		StoryID: 1, Name: "Ana", Email: "ana@example.com", Message: "Lovely",
	})
	_, productErr := svc.CreateProduct(ctx, catalog.CreateProductInput{
		Name: "Card", Description: "Letterpress", Price: decimal.NewFromInt(12),
		Category: "wedding", Image: "https://cdn.example.com/c.jpg",
	})

	for _, err := range []error{commentErr, productErr} {
		requireCode(t, err, catalog.KindInternal, "INTERNAL_ERROR")
		assert.True(t, catalog.IsKind(err, catalog.KindInternal))

		var ce *catalog.Error
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "internal server error", ce.Message)
		assert.NotContains(t, ce.Message, "connection refused")
		require.NotNil(t, errors.Unwrap(ce), "cause is kept")
		assert.ErrorIs(t, ce, driverErr)
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "check story", entries[0].ContextMap()["operation"])
	assert.Contains(t, entries[0].ContextMap()["error"], "connection refused")
}

func TestListLimitIsCapped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for i := 0; i < catalog.MaxLimit+5; i++ {
		_, err := env.svc.CreateHeroSlide(ctx, validSlide(i))
		require.NoError(t, err)
	}
	got, err := env.svc.ListHeroSlides(ctx, catalog.HeroSlideFilter{Page: catalog.Page{Limit: 1000}})
	require.NoError(t, err)
	assert.Len(t, got, catalog.MaxLimit)
}

// ----- Contact -----

func TestSubmitContact(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.svc.SubmitContact(ctx, catalog.ContactInput{Name: "Lu", Email: "LU@x.io", Message: "Hi"}))
	env.svc.Wait()
	require.Len(t, env.notifier.sent, 1)
	msg := env.notifier.sent[0]
	assert.Equal(t, catalog.EventContactSubmitted, msg.Event)
	assert.Equal(t, "lu@x.io", msg.ReplyTo)
	assert.Equal(t, "Not provided", msg.Fields["phone"])
	assert.Equal(t, fixedNow, msg.OccurredAt)

	err := env.svc.SubmitContact(ctx, catalog.ContactInput{Name: "Lu", Email: "nope", Message: "Hi"})
	requireCode(t, err, catalog.KindValidation, "INVALID_EMAIL")
	err = env.svc.SubmitContact(ctx, catalog.ContactInput{Name: "Lu", Email: "nope"})
	requireCode(t, err, catalog.KindValidation, "MISSING_MESSAGE")
}
