// 指示: miu200521358
package minteractor

// ボーンコレクション名。
const (
	COLLECTION_ROOT            = "Root"
	COLLECTION_FACE            = "Face"
	COLLECTION_EYES_CTRL       = "Eyes CTRL"
	COLLECTION_BODY            = "Body"
	COLLECTION_SPINE           = "Spine"
	COLLECTION_SPINE_IK        = "Spine IK"
	COLLECTION_SPINE_FK        = "Spine FK"
	COLLECTION_SPINE_CTRL      = "Spine CTRL"
	COLLECTION_LEGS            = "Legs"
	COLLECTION_LEGS_IK         = "Legs IK"
	COLLECTION_LEGS_FK         = "Legs FK"
	COLLECTION_LEGS_CTRL       = "Legs CTRL"
	COLLECTION_FOOT_ROLL       = "Foot Roll"
	COLLECTION_ARMS            = "Arms"
	COLLECTION_ARMS_IK         = "Arms IK"
	COLLECTION_ARMS_FK         = "Arms FK"
	COLLECTION_ARMS_CTRL       = "Arms CTRL"
	COLLECTION_FINGERS         = "Fingers"
	COLLECTION_FINGERS_IK      = "Fingers IK"
	COLLECTION_FINGERS_FK      = "Fingers FK"
	COLLECTION_FINGERS_IK_CTRL = "Fingers IK CTRL"
	COLLECTION_FINGERS_FK_CTRL = "Fingers FK CTRL"
	COLLECTION_RIGGING         = "Rigging"
	COLLECTION_DEF             = "DEF"
	COLLECTION_MCH             = "MCH"
	COLLECTION_MCH_SHOULDER    = "MCH Shoulder"
	COLLECTION_MCH_FOOTROLL    = "MCH Footroll"
)

// collectionTree はリグ生成開始時に作るコレクションの親子関係。親を先に並べる。
var collectionTree = [][2]string{
	{COLLECTION_ROOT, ""},
	{COLLECTION_FACE, ""},
	{COLLECTION_EYES_CTRL, COLLECTION_FACE},
	{COLLECTION_BODY, ""},
	{COLLECTION_SPINE, COLLECTION_BODY},
	{COLLECTION_SPINE_IK, COLLECTION_SPINE},
	{COLLECTION_SPINE_FK, COLLECTION_SPINE},
	{COLLECTION_SPINE_CTRL, COLLECTION_SPINE},
	{COLLECTION_LEGS, COLLECTION_BODY},
	{COLLECTION_LEGS_IK, COLLECTION_LEGS},
	{COLLECTION_LEGS_FK, COLLECTION_LEGS},
	{COLLECTION_LEGS_CTRL, COLLECTION_LEGS},
	{COLLECTION_ARMS, COLLECTION_BODY},
	{COLLECTION_ARMS_IK, COLLECTION_ARMS},
	{COLLECTION_ARMS_FK, COLLECTION_ARMS},
	{COLLECTION_ARMS_CTRL, COLLECTION_ARMS},
	{COLLECTION_FINGERS, COLLECTION_BODY},
	{COLLECTION_FINGERS_IK, COLLECTION_FINGERS},
	{COLLECTION_FINGERS_FK, COLLECTION_FINGERS},
	{COLLECTION_FINGERS_IK_CTRL, COLLECTION_FINGERS},
	{COLLECTION_FINGERS_FK_CTRL, COLLECTION_FINGERS},
	{COLLECTION_RIGGING, ""},
	{COLLECTION_DEF, COLLECTION_RIGGING},
	{COLLECTION_MCH, COLLECTION_RIGGING},
}

// createCollections はボーンコレクションの階層を作成する。
func createCollections(ctx *RigBuildContext) error {
	for _, entry := range collectionTree {
		if _, err := ctx.rig.Collections.Ensure(entry[0], entry[1]); err != nil {
			return err
		}
	}
	return nil
}
