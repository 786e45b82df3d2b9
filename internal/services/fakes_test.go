package services

import (
	"context"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes used across the service tests. Not-found lookups
// return mongo.ErrNoDocuments so the services' error translation is exercised
// the same way it is against real collections.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) IncrementBalance(_ context.Context, id primitive.ObjectID, delta float64) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.OutstandingBalance += delta
	return nil
}

func (r *fakeUserRepo) SetBalance(_ context.Context, id primitive.ObjectID, balance float64) error {
	user, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.OutstandingBalance = balance
	return nil
}

type fakeAdminRepo struct {
	admins map[primitive.ObjectID]*models.Admin
}

var _ repositories.AdminRepository = (*fakeAdminRepo)(nil)

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[primitive.ObjectID]*models.Admin)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	copied := *admin
	r.admins[admin.ID] = &copied
	return nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *admin
	return &copied, nil
}

func (r *fakeAdminRepo) FindByMobile(_ context.Context, mobile string) (*models.Admin, error) {
	for _, admin := range r.admins {
		if admin.Mobile == mobile {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

type fakeWasteLogRepo struct {
	logs []*models.WasteLog
}

var _ repositories.WasteLogRepository = (*fakeWasteLogRepo)(nil)

func newFakeWasteLogRepo() *fakeWasteLogRepo {
	return &fakeWasteLogRepo{}
}

func (r *fakeWasteLogRepo) Create(_ context.Context, log *models.WasteLog) error {
	if log.ID.IsZero() {
		log.ID = primitive.NewObjectID()
	}
	copied := *log
	r.logs = append(r.logs, &copied)
	return nil
}

func (r *fakeWasteLogRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]*models.WasteLog, error) {
	return r.newestFirst(userID, int64(len(r.logs))), nil
}

func (r *fakeWasteLogRepo) FindRecentByUserID(_ context.Context, userID primitive.ObjectID, limit int64) ([]*models.WasteLog, error) {
	return r.newestFirst(userID, limit), nil
}

func (r *fakeWasteLogRepo) newestFirst(userID primitive.ObjectID, limit int64) []*models.WasteLog {
	logs := make([]*models.WasteLog, 0)
	for i := len(r.logs) - 1; i >= 0 && int64(len(logs)) < limit; i-- {
		if r.logs[i].UserID == userID {
			copied := *r.logs[i]
			logs = append(logs, &copied)
		}
	}
	return logs
}

type fakePickupRepo struct {
	pickups []*models.Pickup
}

var _ repositories.PickupRepository = (*fakePickupRepo)(nil)

func newFakePickupRepo() *fakePickupRepo {
	return &fakePickupRepo{}
}

func (r *fakePickupRepo) Create(_ context.Context, pickup *models.Pickup) error {
	if pickup.ID.IsZero() {
		pickup.ID = primitive.NewObjectID()
	}
	copied := *pickup
	r.pickups = append(r.pickups, &copied)
	return nil
}

func (r *fakePickupRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]*models.Pickup, error) {
	pickups := make([]*models.Pickup, 0)
	for i := len(r.pickups) - 1; i >= 0; i-- {
		if r.pickups[i].UserID == userID {
			copied := *r.pickups[i]
			pickups = append(pickups, &copied)
		}
	}
	return pickups, nil
}

type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*models.Booking
}

var _ repositories.BookingRepository = (*fakeBookingRepo)(nil)

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	bookings := make([]*models.Booking, 0)
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context) ([]*models.Booking, error) {
	bookings := make([]*models.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		copied := *booking
		bookings = append(bookings, &copied)
	}
	return bookings, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *models.Booking) error {
	if _, ok := r.bookings[booking.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

type fakePaymentRepo struct {
	payments map[primitive.ObjectID]*models.Payment
}

var _ repositories.PaymentRepository = (*fakePaymentRepo)(nil)

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[primitive.ObjectID]*models.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *payment
	return &copied, nil
}

func (r *fakePaymentRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]*models.Payment, error) {
	payments := make([]*models.Payment, 0)
	for _, payment := range r.payments {
		if payment.UserID == userID {
			copied := *payment
			payments = append(payments, &copied)
		}
	}
	return payments, nil
}

func (r *fakePaymentRepo) FindAll(_ context.Context) ([]*models.Payment, error) {
	payments := make([]*models.Payment, 0, len(r.payments))
	for _, payment := range r.payments {
		copied := *payment
		payments = append(payments, &copied)
	}
	return payments, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, payment *models.Payment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.payments)), nil
}

func (r *fakePaymentRepo) CountByStatus(_ context.Context, status models.PaymentStatus) (int64, error) {
	var n int64
	for _, payment := range r.payments {
		if payment.Status == status {
			n++
		}
	}
	return n, nil
}

type fakePlanRepo struct {
	plans map[string]*models.SubscriptionPlan
}

var _ repositories.PlanRepository = (*fakePlanRepo)(nil)

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*models.SubscriptionPlan)}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *models.SubscriptionPlan) error {
	copied := *plan
	r.plans[plan.ID] = &copied
	return nil
}

func (r *fakePlanRepo) FindByID(_ context.Context, id string) (*models.SubscriptionPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *plan
	return &copied, nil
}

func (r *fakePlanRepo) FindAll(_ context.Context) ([]*models.SubscriptionPlan, error) {
	plans := make([]*models.SubscriptionPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		copied := *plan
		plans = append(plans, &copied)
	}
	return plans, nil
}

func (r *fakePlanRepo) Update(_ context.Context, plan *models.SubscriptionPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *plan
	r.plans[plan.ID] = &copied
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.plans[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.plans, id)
	return nil
}

func (r *fakePlanRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.plans)), nil
}

type fakeComplaintRepo struct {
	complaints map[primitive.ObjectID]*models.Complaint
}

var _ repositories.ComplaintRepository = (*fakeComplaintRepo)(nil)

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[primitive.ObjectID]*models.Complaint)}
}

func (r *fakeComplaintRepo) Create(_ context.Context, complaint *models.Complaint) error {
	if complaint.ID.IsZero() {
		complaint.ID = primitive.NewObjectID()
	}
	copied := *complaint
	r.complaints[complaint.ID] = &copied
	return nil
}

func (r *fakeComplaintRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Complaint, error) {
	complaint, ok := r.complaints[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *complaint
	return &copied, nil
}

func (r *fakeComplaintRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]*models.Complaint, error) {
	complaints := make([]*models.Complaint, 0)
	for _, complaint := range r.complaints {
		if complaint.UserID == userID {
			copied := *complaint
			complaints = append(complaints, &copied)
		}
	}
	return complaints, nil
}

func (r *fakeComplaintRepo) FindAll(_ context.Context) ([]*models.Complaint, error) {
	complaints := make([]*models.Complaint, 0, len(r.complaints))
	for _, complaint := range r.complaints {
		copied := *complaint
		complaints = append(complaints, &copied)
	}
	return complaints, nil
}

func (r *fakeComplaintRepo) Update(_ context.Context, complaint *models.Complaint) error {
	if _, ok := r.complaints[complaint.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	copied := *complaint
	r.complaints[complaint.ID] = &copied
	return nil
}

func (r *fakeComplaintRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.complaints)), nil
}

type fakeAnnouncementRepo struct {
	announcements []*models.Announcement
}

var _ repositories.AnnouncementRepository = (*fakeAnnouncementRepo)(nil)

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, announcement *models.Announcement) error {
	if announcement.ID.IsZero() {
		announcement.ID = primitive.NewObjectID()
	}
	copied := *announcement
	r.announcements = append(r.announcements, &copied)
	return nil
}

func (r *fakeAnnouncementRepo) FindAll(_ context.Context) ([]*models.Announcement, error) {
	announcements := make([]*models.Announcement, 0, len(r.announcements))
	for i := len(r.announcements) - 1; i >= 0; i-- {
		copied := *r.announcements[i]
		announcements = append(announcements, &copied)
	}
	return announcements, nil
}

type fakeAdminMessageRepo struct {
	messages []*models.AdminMessage
}

var _ repositories.AdminMessageRepository = (*fakeAdminMessageRepo)(nil)

func newFakeAdminMessageRepo() *fakeAdminMessageRepo {
	return &fakeAdminMessageRepo{}
}

func (r *fakeAdminMessageRepo) Create(_ context.Context, message *models.AdminMessage) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeAdminMessageRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]*models.AdminMessage, error) {
	messages := make([]*models.AdminMessage, 0)
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].UserID == userID {
			copied := *r.messages[i]
			messages = append(messages, &copied)
		}
	}
	return messages, nil
}

func (r *fakeAdminMessageRepo) CountUnreadByUserID(_ context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, message := range r.messages {
		if message.UserID == userID && !message.Read {
			n++
		}
	}
	return n, nil
}

func (r *fakeAdminMessageRepo) MarkReadByUserID(_ context.Context, userID primitive.ObjectID) error {
	for _, message := range r.messages {
		if message.UserID == userID {
			message.Read = true
		}
	}
	return nil
}
