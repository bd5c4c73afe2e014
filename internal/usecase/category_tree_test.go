package usecase_test

import (
	"testing"

	"github.com/pixelmart-dev/go-backend/internal/domain"
	"github.com/pixelmart-dev/go-backend/internal/usecase"
)

func cat(id int64, slug, parent string) domain.Category {
	return domain.Category{ID: id, Name: slug, Slug: slug, Parent: parent}
}

func TestCategoryTree_CollectsDescendants(t *testing.T) {
	all := []domain.Category{
		cat(1, "games", ""),
		cat(2, "consoles", ""),
		cat(3, "rpg", "games"),
		cat(4, "jrpg", "rpg"),
		cat(5, "retro", "consoles"),
	}

	tree := usecase.CategoryTree(all, []domain.CategoryRef{all[0].Ref()})

	want := []string{"games", "rpg", "jrpg"}
	if len(tree) != len(want) {
		t.Fatalf("want %v, got %v", want, tree)
	}
	for i, slug := range want {
		if tree[i].Slug != slug {
			t.Fatalf("want %v at %d, got %v", slug, i, tree[i].Slug)
		}
	}
}

func TestCategoryTree_CycleTerminates(t *testing.T) {
	all := []domain.Category{
		cat(1, "a", "b"),
		cat(2, "b", "a"),
	}

	tree := usecase.CategoryTree(all, []domain.CategoryRef{all[0].Ref()})
	if len(tree) != 2 {
		t.Fatalf("want both nodes exactly once, got %v", tree)
	}
}

func TestFamilyTree_RootFirst(t *testing.T) {
	all := []domain.Category{
		cat(1, "a", ""),
		cat(2, "b", "a"),
		cat(3, "c", "b"),
	}

	chain := usecase.FamilyTree(all, &all[2])

	want := []string{"a", "b", "c"}
	if len(chain) != len(want) {
		t.Fatalf("want %v, got %v", want, chain)
	}
	for i, slug := range want {
		if chain[i].Slug != slug {
			t.Fatalf("want %v at %d, got %v", slug, i, chain[i].Slug)
		}
	}
}

func TestFamilyTree_MissingParentStops(t *testing.T) {
	all := []domain.Category{
		cat(1, "orphan", "ghost"),
	}

	chain := usecase.FamilyTree(all, &all[0])
	if len(chain) != 1 || chain[0].Slug != "orphan" {
		t.Fatalf("want partial chain [orphan], got %v", chain)
	}
}

func TestFamilyTree_ParentCycleTerminates(t *testing.T) {
	all := []domain.Category{
		cat(1, "x", "y"),
		cat(2, "y", "x"),
	}

	chain := usecase.FamilyTree(all, &all[0])
	if len(chain) != 2 {
		t.Fatalf("want chain of 2, got %v", chain)
	}
	if chain[len(chain)-1].Slug != "x" {
		t.Fatalf("start category must close the chain, got %v", chain)
	}
}

func TestFindCategoryBySlug(t *testing.T) {
	all := []domain.Category{cat(1, "a", ""), cat(2, "b", "a")}

	if got := usecase.FindCategoryBySlug(all, "b"); got == nil || got.ID != 2 {
		t.Fatalf("want category b, got %v", got)
	}
	if got := usecase.FindCategoryBySlug(all, "zzz"); got != nil {
		t.Fatalf("want nil for unknown slug, got %v", got)
	}
}
