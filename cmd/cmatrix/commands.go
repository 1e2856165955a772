package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cmatrix/cplx"
	"github.com/katalvlaran/cmatrix/matrix"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print sample complex numbers, vectors and matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	a, b := cplx.From(4.0, 5.0), cplx.From(2.0, 3.0)
	q, err := a.Div(b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s / %s = %s\n", a, b, q)
	fmt.Fprintf(w, "|%s| = %.7f\n", cplx.From(4.0, -5.0), cplx.From(4.0, -5.0).Norm())

	v := matrix.VectorFromSlice([]cplx.Complex[float64]{cplx.From(1.0, 1.0), cplx.From(2.0, -1.0)})
	fmt.Fprintf(w, "v = %s, |v| = %.4f\n", v, v.NormL2())

	x, err := parseMatrix(2, 2, "2+1i,3+8i,6+5i,5+2i")
	if err != nil {
		return err
	}
	y, err := parseMatrix(2, 2, "3+1i,8+2i,2+9i,-3+8i")
	if err != nil {
		return err
	}
	sum, err := x.Add(y)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "A + B =\n%s", sum)

	k, err := parseMatrix(2, 2, "2,1,3,5")
	if err != nil {
		return err
	}
	l, err := parseMatrix(2, 2, "1i,0,1i,0")
	if err != nil {
		return err
	}
	kron, err := k.KroneckerProduct(l)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "K ⊗ L =\n%s", kron)

	m, err := parseMatrix(2, 3, "1,2,3,4,5,6")
	if err != nil {
		return err
	}
	mv, err := m.MultiplyVector(matrix.VectorFromSlice([]cplx.Complex[float64]{
		cplx.From(1.0, 0.0), cplx.From(0.0, 1.0), cplx.From(-1.0, 0.0),
	}))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "M·u = %s\n", mv)

	_, err = m.At(m.Rows(), 0)
	fmt.Fprintf(w, "M.At(%d, 0): %v\n", m.Rows(), err)

	return nil
}

func newEigenCmd() *cobra.Command {
	var (
		size    int
		values  string
		shift   bool
		maxIter int
		eps     float64
	)

	cmd := &cobra.Command{
		Use:   "eigen",
		Short: "Compute eigenvalues and eigenvectors by QR iteration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseMatrix(size, size, values)
			if err != nil {
				return err
			}

			opts := []matrix.Option{matrix.WithShift(shift), matrix.WithMaxIterations(maxIter)}
			if cmd.Flags().Changed("eps") {
				opts = append(opts, matrix.WithEpsilon(eps))
			}

			lambdas, vectors, err := a.Eigen(opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for k := range lambdas {
				fmt.Fprintf(out, "λ%d = %s\tx%d = %s\n", k, lambdas[k], k, vectors[k])
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 2, "Matrix dimension n (the matrix is n×n)")
	cmd.Flags().StringVar(&values, "values", "", "Row-major entries (comma-separated complex literals, e.g. 1+2i)")
	cmd.Flags().BoolVar(&shift, "shift", false, "Use the Wilkinson shift with deflation")
	cmd.Flags().IntVar(&maxIter, "max-iter", matrix.DefaultMaxIterations, "QR iteration budget")
	cmd.Flags().Float64Var(&eps, "eps", matrix.DefaultEpsilon64, "Convergence tolerance")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func newKronCmd() *cobra.Command {
	var (
		aRows, aCols, bRows, bCols int
		aValues, bValues           string
	)

	cmd := &cobra.Command{
		Use:   "kron",
		Short: "Print the Kronecker product A ⊗ B",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseMatrix(aRows, aCols, aValues)
			if err != nil {
				return fmt.Errorf("matrix A: %w", err)
			}
			b, err := parseMatrix(bRows, bCols, bValues)
			if err != nil {
				return fmt.Errorf("matrix B: %w", err)
			}
			k, err := a.KroneckerProduct(b)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), k)

			return nil
		},
	}
	cmd.Flags().IntVar(&aRows, "a-rows", 2, "Rows of A")
	cmd.Flags().IntVar(&aCols, "a-cols", 2, "Columns of A")
	cmd.Flags().StringVar(&aValues, "a", "", "Row-major entries of A")
	cmd.Flags().IntVar(&bRows, "b-rows", 2, "Rows of B")
	cmd.Flags().IntVar(&bCols, "b-cols", 2, "Columns of B")
	cmd.Flags().StringVar(&bValues, "b", "", "Row-major entries of B")

	return cmd
}

func newGramSchmidtCmd() *cobra.Command {
	var vectors string

	cmd := &cobra.Command{
		Use:   "gram-schmidt",
		Short: "Orthonormalize a set of vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseVectors(vectors)
			if err != nil {
				return err
			}
			basis, err := matrix.GramSchmidtDecomposition(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for k, u := range basis {
				fmt.Fprintf(out, "u%d = %s\n", k, u)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&vectors, "vectors", "", `Vectors separated by ";", entries by "," (e.g. "1,1i;2,0")`)
	_ = cmd.MarkFlagRequired("vectors")

	return cmd
}
