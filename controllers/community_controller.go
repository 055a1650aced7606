package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Huskyauto/mindfulbite-emotional-eating-support/gamification"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/models"
	"github.com/Huskyauto/mindfulbite-emotional-eating-support/utils"
)

// Feed pages are the one shared read in the system, so they are cached in
// Redis for a short window. Every post or like mutation invalidates the
// whole prefix.
const (
	communityFeedCachePrefix = "community:feed:"
	communityFeedCacheTTL    = 2 * time.Minute
)

// communityFeedPage is the user-independent slice of the feed. Per-user
// fields (liked_by_me, is_mine) are layered on after the cache.
type communityFeedPage struct {
	Posts   []models.CommunityPost `json:"posts"`
	Authors map[uint]string        `json:"authors"`
}

// CommunityController handles the shared feed: posts and like toggles.
type CommunityController struct {
	db *gorm.DB
}

// NewCommunityController creates a new controller instance.
func NewCommunityController(db *gorm.DB) *CommunityController {
	return &CommunityController{db: db}
}

// ListPosts returns the global feed, newest first. Anonymous posts hide the
// author name; the author id is never exposed for them.
func (c *CommunityController) ListPosts(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	limit, offset := listWindow(ctx, 20, 100)

	cacheKey := fmt.Sprintf("%s%d:%d", communityFeedCachePrefix, limit, offset)
	var page communityFeedPage
	if !utils.CacheGetJSON(cacheKey, &page) {
		var posts []models.CommunityPost
		if err := c.db.Order("created_at DESC").
			Limit(limit).Offset(offset).
			Find(&posts).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to load posts")
			return
		}

		authorIDs := make([]uint, 0, len(posts))
		for _, p := range posts {
			if !p.IsAnonymous {
				authorIDs = append(authorIDs, p.UserID)
			}
		}

		names := map[uint]string{}
		if ids := utils.UniqueUint(authorIDs); len(ids) > 0 {
			var authors []models.User
			if err := c.db.Where("id IN ?", ids).Find(&authors).Error; err == nil {
				for _, a := range authors {
					names[a.ID] = a.Name
				}
			}
		}

		page = communityFeedPage{Posts: posts, Authors: names}
		utils.CacheSetJSON(cacheKey, page, communityFeedCacheTTL)
	}

	postIDs := make([]uint, 0, len(page.Posts))
	for _, p := range page.Posts {
		postIDs = append(postIDs, p.ID)
	}

	liked := map[uint]bool{}
	if len(postIDs) > 0 {
		var likes []models.PostLike
		if err := c.db.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&likes).Error; err == nil {
			for _, l := range likes {
				liked[l.PostID] = true
			}
		}
	}

	items := make([]gin.H, 0, len(page.Posts))
	for _, p := range page.Posts {
		item := gin.H{
			"id":           p.ID,
			"content":      p.Content,
			"is_anonymous": p.IsAnonymous,
			"likes_count":  p.LikesCount,
			"liked_by_me":  liked[p.ID],
			"created_at":   p.CreatedAt,
			"is_mine":      p.UserID == userID,
		}
		if p.IsAnonymous {
			item["author_name"] = "Anonymous"
		} else {
			item["author_name"] = page.Authors[p.UserID]
			item["author_id"] = p.UserID
		}
		items = append(items, item)
	}

	utils.Success(ctx, items)
}

// CreatePost publishes a post and awards points.
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var req struct {
		Content     string `json:"content" binding:"required"`
		IsAnonymous bool   `json:"is_anonymous"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40071, "invalid request payload")
		return
	}

	post := models.CommunityPost{
		UserID:      userID,
		Content:     utils.Sanitize(req.Content),
		IsAnonymous: req.IsAnonymous,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return awardPoints(tx, userID, gamification.CommunityPostPoints)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50072, "failed to create post")
		return
	}

	utils.InvalidateByPrefix(communityFeedCachePrefix)

	utils.Success(ctx, gin.H{
		"post":           post,
		"points_awarded": gamification.CommunityPostPoints,
	})
}

// ToggleLike likes or unlikes a post. The like row and counter move in one
// transaction so the count never drifts.
func (c *CommunityController) ToggleLike(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40072, "invalid post id")
		return
	}

	var likedNow bool
	var likesCount int
	err := c.db.Transaction(func(tx *gorm.DB) error {
		var post models.CommunityPost
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, postID).Error; err != nil {
			return err
		}

		var existing models.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			post.LikesCount--
			if post.LikesCount < 0 {
				post.LikesCount = 0
			}
			likedNow = false
		case err == gorm.ErrRecordNotFound:
			like := models.PostLike{PostID: postID, UserID: userID, CreatedAt: time.Now()}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			post.LikesCount++
			likedNow = true
		default:
			return err
		}

		likesCount = post.LikesCount
		return tx.Save(&post).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40471, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50073, "failed to toggle like")
		return
	}

	utils.InvalidateByPrefix(communityFeedCachePrefix)

	utils.Success(ctx, gin.H{
		"liked":       likedNow,
		"likes_count": likesCount,
	})
}

// MyLikes returns the ids of posts the caller has liked.
func (c *CommunityController) MyLikes(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	var postIDs []uint
	if err := c.db.Model(&models.PostLike{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &postIDs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50075, "failed to load likes")
		return
	}

	utils.Success(ctx, gin.H{"post_ids": postIDs})
}

// DeletePost removes the caller's own post (admins can remove any).
func (c *CommunityController) DeletePost(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "Please login")
		return
	}

	postID, ok := parseIDParam(ctx, "id")
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40072, "invalid post id")
		return
	}

	var post models.CommunityPost
	if err := c.db.First(&post, postID).Error; err != nil {
		utils.Error(ctx, http.StatusNotFound, 40471, "post not found")
		return
	}
	if post.UserID != userID && !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40371, "not your post")
		return
	}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&post).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50074, "failed to delete post")
		return
	}

	utils.InvalidateByPrefix(communityFeedCachePrefix)

	utils.Success(ctx, gin.H{"message": "post deleted"})
}
