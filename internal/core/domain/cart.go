package domain

import "time"

// CartArticle is a single line in a cart.
type CartArticle struct {
	ArticleID int64 `json:"article_id" bson:"article_id"`
	Quantity  int   `json:"quantity" bson:"quantity"`
}

// Cart collects articles a user intends to order. A user has at most one
// active cart: the newest cart that no order references yet.
type Cart struct {
	ID        int64         `json:"cart_id" bson:"cart_id"`
	UserID    int64         `json:"user_id" bson:"user_id"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	Articles  []CartArticle `json:"articles" bson:"articles"`
}
