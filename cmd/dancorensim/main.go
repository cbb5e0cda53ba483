// Command dancorensim runs a scripted sequence of danmaku scenarios
// against a Coordinator and prints per-tick render-data summaries,
// demonstrating the reference behavior catalog end to end.
package main

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/coordinator"
)

func main() {
	runStraightShot()
	runGravityArc()
	runMultiStageSuccessor()
}

// runStraightShot is scenario S1: a single projectile advancing along Z
// under motion1 until mandatory_end retires it at end_time.
func runStraightShot() {
	fmt.Println("=== S1: single straight shot ===")

	c := coordinator.New(coordinator.WithReferenceCatalog())

	desc := dancoren.NewSpawnDescriptor([]string{"motion1", "mandatory_end"}, 3)
	desc.Attributes = []dancoren.Attribute{
		dancoren.Vec3Attr(dancoren.ColPosZ, mgl32.Vec3{}),
		dancoren.Vec3Attr(dancoren.ColMotionZ, mgl32.Vec3{0, 0, 0.1}),
	}
	c.Add([]dancoren.SpawnDescriptor{desc})

	for tick := 1; tick <= 4; tick++ {
		c.Tick()
		r := c.RenderData(1) // partialTicks=1: this tick's freshly-computed position
		if len(r) == 0 {
			fmt.Printf("tick %d: slot retired\n", tick)
			continue
		}
		pos := r[0].Model.Col(3)
		fmt.Printf("tick %d: pos_z=%.3f ticks_existed=%d\n", tick, pos[2], r[0].TicksExisted)
	}
}

// runGravityArc is scenario S2: gravity1 and acceleration1 composing their
// writes onto independent motion axes.
func runGravityArc() {
	fmt.Println("=== S2: gravity + acceleration ===")

	c := coordinator.New(coordinator.WithReferenceCatalog())

	desc := dancoren.NewSpawnDescriptor([]string{"gravity1", "acceleration1", "mandatory_end"}, 10)
	desc.Attributes = []dancoren.Attribute{
		dancoren.Vec3Attr(dancoren.ColMotionZ, mgl32.Vec3{0, 0, 1}),
		dancoren.Vec3Attr(dancoren.ColGravityY, mgl32.Vec3{0, -0.01, 0}),
		dancoren.ScalarAttr(dancoren.ColSpeedAccel, 0.1),
	}
	c.Add([]dancoren.SpawnDescriptor{desc})

	for tick := 1; tick <= 5; tick++ {
		c.Tick()
	}
	s := c.BucketStore([]string{"gravity1", "acceleration1", "mandatory_end"})
	if s == nil {
		log.Fatal("expected the gravity/acceleration bucket to still exist")
	}
	fmt.Printf("after 5 ticks: motion_y=%.4f motion_z=%.4f\n", s.MotionY.Get(0), s.MotionZ.Get(0))
}

// runMultiStageSuccessor is scenario S3: a mandatory-end slot reusing its
// own index for a single next-stage descriptor.
func runMultiStageSuccessor() {
	fmt.Println("=== S3: multi-stage successor reuses slot ===")

	c := coordinator.New(coordinator.WithReferenceCatalog())

	stageB := dancoren.NewSpawnDescriptor([]string{"mandatory_end"}, 10)
	stageA := dancoren.NewSpawnDescriptor([]string{"mandatory_end"}, 1)
	stageA.NextStage = []dancoren.SpawnDescriptor{stageB}

	c.Add([]dancoren.SpawnDescriptor{stageA})
	before := c.RenderData(0)
	fmt.Printf("stage A id: %s\n", before[0].ID)

	c.Tick()
	c.Tick()

	after := c.RenderData(0)
	if len(after) != 1 {
		log.Fatalf("expected exactly one live projectile after the reuse tick, got %d", len(after))
	}
	fmt.Printf("stage B id: %s (differs from stage A: %t)\n", after[0].ID, after[0].ID != before[0].ID)
}
