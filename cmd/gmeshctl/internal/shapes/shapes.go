// Package shapes wires the mesh, primitives, and export packages into
// the gmeshctl command tree.
package shapes

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sksmith/gmesh/export"
	"github.com/sksmith/gmesh/mesh"
	"github.com/sksmith/gmesh/primitives"
)

// RootCommand assembles the gmeshctl command tree, logging diagnostics
// through logger when --debug is set.
func RootCommand(logger *zap.Logger) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "gmeshctl",
		Short: "Build, validate, and export polygon meshes",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging of face creation (not applied to cube)")

	root.AddCommand(
		buildCommand(&debug, logger),
		validateCommand(&debug, logger),
	)
	return root
}

func buildCommand(debug *bool, logger *zap.Logger) *cobra.Command {
	var (
		shape string
		size  float64
		nx    int
		ny    int
		nz    int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a primitive shape and export it to OBJ",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mesh.NewMesh(mesh.WithLogger(logger), mesh.WithDebug(*debug))

			var built *mesh.Mesh
			switch shape {
			case "plane":
				if _, err := primitives.Plane(m, primitives.NewPlaneParams(nx, ny)); err != nil {
					return err
				}
				built = m
			case "cube":
				cube, err := primitives.Cube(primitives.NewCubeParams(nx, ny, nz))
				if err != nil {
					return err
				}
				built = cube
			case "triangle":
				if _, err := primitives.Triangle(m,
					mgl64.Vec3{0, 0, 0}, mgl64.Vec3{size, 0, 0}, mgl64.Vec3{0, size, 0}); err != nil {
					return err
				}
				built = m
			default:
				return fmt.Errorf("gmeshctl: unknown shape %q (want plane, cube, or triangle)", shape)
			}

			if r := built.Validate(); !r.OK() {
				return fmt.Errorf("gmeshctl: built mesh failed validation: %v", r.Errors)
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				return export.WriteOBJ(f, built)
			}
			return export.WriteOBJ(w, built)
		},
	}

	cmd.Flags().StringVar(&shape, "shape", "cube", "shape to build: plane, cube, triangle")
	cmd.Flags().Float64Var(&size, "size", 1, "size for the triangle shape")
	cmd.Flags().IntVar(&nx, "nx", 2, "grid vertex count along X (plane, cube)")
	cmd.Flags().IntVar(&ny, "ny", 2, "grid vertex count along Y (plane, cube)")
	cmd.Flags().IntVar(&nz, "nz", 2, "grid vertex count along Z (cube only)")
	cmd.Flags().StringVar(&out, "out", "", "output OBJ path (stdout if empty)")
	return cmd
}

func validateCommand(debug *bool, logger *zap.Logger) *cobra.Command {
	var shape string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build a primitive shape and report its validation errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mesh.NewMesh(mesh.WithLogger(logger), mesh.WithDebug(*debug))

			switch shape {
			case "cube":
				c, err := primitives.Cube(primitives.NewCubeParams(2, 2, 2))
				if err != nil {
					return err
				}
				m = c
			case "plane":
				if _, err := primitives.Plane(m, primitives.NewPlaneParams(2, 2)); err != nil {
					return err
				}
			default:
				return fmt.Errorf("gmeshctl: unknown shape %q (want plane or cube)", shape)
			}

			r := m.Validate()
			if r.OK() {
				fmt.Println("ok")
				return nil
			}
			for _, e := range r.Errors {
				fmt.Printf("%s: %s\n", e.Kind, e.Message)
			}
			return fmt.Errorf("gmeshctl: %d validation error(s)", len(r.Errors))
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "cube", "shape to validate: plane, cube")
	return cmd
}
