package usecase

import "github.com/pixelmart-dev/go-backend/internal/domain"

// Категории хранятся плоским списком со ссылкой на slug родителя,
// поэтому иерархия каждый раз восстанавливается обходом всего списка.
// Исходные данные не гарантируют ацикличность: оба обхода ведут
// множество посещённых slug-ов и не заходят в один узел дважды.

// CategoryTree строит поддерево потомков: затравки плюс, до неподвижной
// точки, каждая категория, чей родительский slug уже попал в результат.
// Порядок — порядок обнаружения: сначала затравки, затем дети в порядке
// каталога.
func CategoryTree(all []domain.Category, seeds []domain.CategoryRef) []domain.CategoryRef {
	visited := make(map[string]bool, len(seeds))
	tree := make([]domain.CategoryRef, 0, len(seeds))

	for _, seed := range seeds {
		if seed.Slug == "" || visited[seed.Slug] {
			continue
		}
		visited[seed.Slug] = true
		tree = append(tree, seed)
	}

	for changed := true; changed; {
		changed = false
		for i := range all {
			cat := &all[i]
			if visited[cat.Slug] || cat.Parent == "" || !visited[cat.Parent] {
				continue
			}
			visited[cat.Slug] = true
			tree = append(tree, cat.Ref())
			changed = true
		}
	}

	return tree
}

// FamilyTree строит цепочку предков от корневого предка к стартовой
// категории включительно. Если родительский slug не находится или
// образует цикл, возвращается накопленная частичная цепочка.
func FamilyTree(all []domain.Category, start *domain.Category) []domain.Category {
	visited := map[string]bool{start.Slug: true}
	chain := []domain.Category{*start}

	cur := *start
	for cur.Parent != "" && !visited[cur.Parent] {
		parent := FindCategoryBySlug(all, cur.Parent)
		if parent == nil {
			break
		}
		visited[parent.Slug] = true
		chain = append(chain, *parent)
		cur = *parent
	}

	// предки копились от стартовой категории вверх, разворачиваем к виду корень..старт
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// FindCategoryBySlug возвращает первую категорию с данным slug или nil.
func FindCategoryBySlug(all []domain.Category, slug string) *domain.Category {
	for i := range all {
		if all[i].Slug == slug {
			return &all[i]
		}
	}

	return nil
}
