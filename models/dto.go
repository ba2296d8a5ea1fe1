package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     Role   `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Content     string `json:"content" binding:"required"`
	PublisherID *uint  `json:"publisher_id"`
}

type UpdateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Content     string `json:"content" binding:"required"`
	PublisherID *uint  `json:"publisher_id"`
}

type CreateNewsletterRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Body        string `json:"body" binding:"required"`
	PublisherID *uint  `json:"publisher_id"`
}

type UpdateNewsletterRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Body        string `json:"body" binding:"required"`
	PublisherID *uint  `json:"publisher_id"`
}

type SubscriptionRequest struct {
	PublisherIDs  []uint `json:"publisher_ids"`
	JournalistIDs []uint `json:"journalist_ids"`
}

type SubscriptionResponse struct {
	Publishers  []Publisher `json:"publishers"`
	Journalists []User      `json:"journalists"`
}

type ReassignRoleRequest struct {
	Role Role `json:"role" binding:"required"`
}

type AffiliateStaffRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// FeedResponse is the reader dashboard payload.
type FeedResponse struct {
	Articles    []Article    `json:"articles"`
	Newsletters []Newsletter `json:"newsletters"`
}

// ContentDashboard splits items by approval state for the journalist,
// editor and publisher dashboards.
type ContentDashboard struct {
	PendingArticles     []Article    `json:"pending_articles"`
	ApprovedArticles    []Article    `json:"approved_articles"`
	PendingNewsletters  []Newsletter `json:"pending_newsletters"`
	ApprovedNewsletters []Newsletter `json:"approved_newsletters"`
}
