// Command example demonstrates basic gokanren usage patterns: unification,
// disjunction, list relations, a small in-memory relation, and the
// committed-choice and arithmetic combinators the core library adds beyond
// classic unify/conj/disj.
package main

import (
	"fmt"

	"github.com/gokanren/gokanren/pkg/minikanren"
)

func main() {
	fmt.Println("=== gokanren Examples ===")
	fmt.Println()

	basicUnification()
	multipleChoices()
	listOperations()
	relationExample()
	committedChoice()
	arithmetic()
}

// basicUnification demonstrates simple unification.
func basicUnification() {
	fmt.Println("1. Basic Unification:")

	results, _ := minikanren.Run(1, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Eq(q, minikanren.NewAtom("hello"))
	})
	fmt.Printf("   q = \"hello\" => %v\n", results)

	results, _ = minikanren.Run(1, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Eq(q, minikanren.NewAtom(42))
	})
	fmt.Printf("   q = 42 => %v\n", results)
	fmt.Println()
}

// multipleChoices demonstrates disjunction (choice points).
func multipleChoices() {
	fmt.Println("2. Multiple Choices (Disjunction):")

	results, _ := minikanren.Run(5, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Disj(
			minikanren.Eq(q, minikanren.NewAtom(1)),
			minikanren.Eq(q, minikanren.NewAtom(2)),
			minikanren.Eq(q, minikanren.NewAtom(3)),
		)
	})
	fmt.Printf("   q ∈ {1, 2, 3} => %v\n", results)

	results, _ = minikanren.Run(5, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Disj(
			minikanren.Eq(q, minikanren.NewAtom("hello")),
			minikanren.Eq(q, minikanren.NewAtom(42)),
			minikanren.Eq(q, minikanren.NewAtom(true)),
		)
	})
	fmt.Printf("   q ∈ {\"hello\", 42, true} => %v\n", results)
	fmt.Println()
}

// listOperations demonstrates list construction and the Appendo relation.
func listOperations() {
	fmt.Println("3. List Operations:")

	list123 := minikanren.List(
		minikanren.NewAtom(1),
		minikanren.NewAtom(2),
		minikanren.NewAtom(3),
	)

	results, _ := minikanren.Run(1, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Eq(q, list123)
	})
	fmt.Printf("   q = [1, 2, 3] => %v\n", results)

	results, _ = minikanren.Run(1, func(q *minikanren.Var) minikanren.Goal {
		list12 := minikanren.List(minikanren.NewAtom(1), minikanren.NewAtom(2))
		list34 := minikanren.List(minikanren.NewAtom(3), minikanren.NewAtom(4))
		return minikanren.Appendo(list12, list34, q)
	})
	fmt.Printf("   append([1, 2], [3, 4]) => %d result(s)\n", len(results))

	results, _ = minikanren.Run(1, func(q *minikanren.Var) minikanren.Goal {
		list34 := minikanren.List(minikanren.NewAtom(3), minikanren.NewAtom(4))
		list1234 := minikanren.List(
			minikanren.NewAtom(1), minikanren.NewAtom(2),
			minikanren.NewAtom(3), minikanren.NewAtom(4),
		)
		return minikanren.Appendo(q, list34, list1234)
	})
	fmt.Printf("   What + [3, 4] = [1, 2, 3, 4]? => %d result(s)\n", len(results))
	if len(results) > 0 {
		fmt.Printf("   First result: %v\n", results[0])
	}
	fmt.Println()
}

// relationExample demonstrates a small in-memory relation built from Disj.
func relationExample() {
	fmt.Println("4. Relational Programming:")

	likes := func(person, food minikanren.Term) minikanren.Goal {
		return minikanren.Disj(
			minikanren.Conj(
				minikanren.Eq(person, minikanren.NewAtom("alice")),
				minikanren.Eq(food, minikanren.NewAtom("pizza")),
			),
			minikanren.Conj(
				minikanren.Eq(person, minikanren.NewAtom("bob")),
				minikanren.Eq(food, minikanren.NewAtom("burgers")),
			),
			minikanren.Conj(
				minikanren.Eq(person, minikanren.NewAtom("alice")),
				minikanren.Eq(food, minikanren.NewAtom("salad")),
			),
		)
	}

	results, _ := minikanren.Run(5, func(q *minikanren.Var) minikanren.Goal {
		return likes(minikanren.NewAtom("alice"), q)
	})
	fmt.Printf("   What does Alice like? => %v\n", results)

	results, _ = minikanren.Run(5, func(q *minikanren.Var) minikanren.Goal {
		return likes(q, minikanren.NewAtom("pizza"))
	})
	fmt.Printf("   Who likes pizza? => %v\n", results)

	results, _ = minikanren.Run(10, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Fresh([]string{"person", "food"}, func(vs []*minikanren.Var) minikanren.Goal {
			person, food := vs[0], vs[1]
			return minikanren.Conj(
				likes(person, food),
				minikanren.Eq(q, minikanren.List(person, food)),
			)
		})
	})
	fmt.Printf("   All person-food pairs => %v\n", results)
	fmt.Println()
}

// committedChoice demonstrates Condu, the committed-choice combinator:
// once a clause's test goal succeeds once, sibling clauses are never
// tried, even though a plain Disj would have explored them too.
func committedChoice() {
	fmt.Println("5. Committed Choice (Condu):")

	results, _ := minikanren.Run(5, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Condu(
			minikanren.Clause{
				minikanren.Disj(
					minikanren.Eq(q, minikanren.NewAtom(1)),
					minikanren.Eq(q, minikanren.NewAtom(2)),
				),
			},
			minikanren.Clause{minikanren.Eq(q, minikanren.NewAtom(99))},
		)
	})
	fmt.Printf("   condu(disj(q=1, q=2); q=99) => %v (only the first answer survives)\n", results)
	fmt.Println()
}

// arithmetic demonstrates Pluso and Betweeno.
func arithmetic() {
	fmt.Println("6. Relational Arithmetic:")

	results, _ := minikanren.Run(1, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Pluso(minikanren.NewAtom(int64(2)), minikanren.NewAtom(int64(3)), q)
	})
	fmt.Printf("   2 + 3 = q => %v\n", results)

	results, _ = minikanren.Run(10, func(q *minikanren.Var) minikanren.Goal {
		return minikanren.Betweeno(minikanren.NewAtom(int64(1)), minikanren.NewAtom(int64(5)), q)
	})
	fmt.Printf("   q ∈ [1, 5] => %v\n", results)
	fmt.Println()
}
