package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/pkg/e"
	"github.com/pixelmart-dev/go-backend/pkg/logger"
)

// BlogUseCase реализует запросы блога по той же схеме, что и каталог:
// полный скан коллекции постов и композиция в памяти.
type BlogUseCase struct {
	postRepo     PostRepository
	categoryRepo CategoryRepository
	logger       logger.Logger
}

func NewBlogUC(postRepo PostRepository, categoryRepo CategoryRepository, logger logger.Logger) *BlogUseCase {
	return &BlogUseCase{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Posts возвращает страницу постов. Фильтр по категории — прямое
// совпадение slug, без восстановления поддерева.
func (b *BlogUseCase) Posts(ctx context.Context, req *PostsReq) (*PostsRes, error) {
	const op = "BlogUseCase.Posts"

	posts, err := b.postRepo.FindAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Category != "" {
		filtered := make([]domain.Post, 0, len(posts))
		for i := range posts {
			if postHasCategory(&posts[i], req.Category) {
				filtered = append(filtered, posts[i])
			}
		}
		posts = filtered
	}

	return NewPostsRes(paginate(posts, req.From, req.To), len(posts)), nil
}

// Post возвращает пост по slug и до четырёх постов, разделяющих с ним
// хотя бы одну категорию.
func (b *BlogUseCase) Post(ctx context.Context, req *PostReq) (*PostRes, error) {
	const op = "BlogUseCase.Post"

	posts, err := b.postRepo.FindAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var post *domain.Post
	for i := range posts {
		if posts[i].Slug == req.Slug {
			post = &posts[i]
			break
		}
	}
	if post == nil {
		return nil, e.Wrap(op, e.ErrPostNotFound)
	}

	slugs := refSlugSet(post.Categories)
	related := make([]domain.Post, 0)
	for i := range posts {
		if posts[i].Slug == post.Slug {
			continue
		}
		if intersectsCategories(posts[i].Categories, slugs) {
			related = append(related, posts[i])
		}
	}
	if len(related) > 4 {
		related = related[:4]
	}

	return &PostRes{Data: post, Related: related}, nil
}

// PostSidebarData возвращает все категории постов и два самых свежих поста.
func (b *BlogUseCase) PostSidebarData(ctx context.Context) (*PostSidebarRes, error) {
	const op = "BlogUseCase.PostSidebarData"

	posts, err := b.postRepo.FindAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := b.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	recent := append([]domain.Post(nil), posts...)
	// свежие первыми; посты с нечитаемой датой уходят в конец
	sort.SliceStable(recent, func(i, j int) bool {
		return postDate(&recent[i]).After(postDate(&recent[j]))
	})
	if len(recent) > 2 {
		recent = recent[:2]
	}

	return &PostSidebarRes{Categories: categories, Recent: recent}, nil
}

func postHasCategory(post *domain.Post, slug string) bool {
	for _, cat := range post.Categories {
		if cat.Slug == slug {
			return true
		}
	}

	return false
}

func postDate(post *domain.Post) time.Time {
	t, _ := parseDate(post.Date)
	return t
}
