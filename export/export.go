package export

import (
	log "github.com/sirupsen/logrus"

	"pipeflow/calculator"
	"pipeflow/chart"
	"pipeflow/model"
)

// All writes one workbook per fluid and the comparison images for one
// orientation under root. It stops at the first failure.
func All(root string, o model.Orientation, lengths []float64, results []calculator.FluidSeries) ([]string, error) {
	var paths []string
	for _, r := range results {
		path := WorkbookPath(root, o, r.Fluid.Name)
		if err := WriteWorkbook(path, r.Fluid.Name, lengths, r.Series); err != nil {
			log.WithFields(log.Fields{"fluid": r.Fluid.Name, "path": path}).Error("导出表格失败: ", err)
			return paths, err
		}
		paths = append(paths, path)
	}
	if len(results) == 0 {
		return paths, nil
	}
	for _, c := range chart.Comparisons {
		path := chart.ImagePath(root, o, c)
		p, err := chart.Render(c, results)
		if err != nil {
			return paths, err
		}
		if err := chart.Save(p, path); err != nil {
			log.WithField("path", path).Error("导出图片失败: ", err)
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
